package menu

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"
	"github.com/vini-501/FoodBase/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error)
		GetMenuItemsByCategory(ctx context.Context, category string) ([]domain.MenuItemResponse, error)
		GetCategories(ctx context.Context) ([]string, error)
		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.CreateMenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
		UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) (string, error)
		ReseedMenu(ctx context.Context) ([]domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponses(items), nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) GetMenuItemsByCategory(ctx context.Context, category string) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponses(items), nil
}

func (s *menuService) GetCategories(ctx context.Context) ([]string, error) {
	return s.menuRepository.GetCategories(ctx)
}

func (s *menuService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.CreateMenuItemResponse, error) {
	if req.Name == "" || req.Category == "" || req.RestaurantLocation == "" {
		return domain.CreateMenuItemResponse{}, domain.ErrMissingRequiredFields
	}
	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return domain.CreateMenuItemResponse{}, domain.ErrInvalidPrice
	}

	item := &entities.MenuItem{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Category:           req.Category,
		ImageURL:           req.ImageURL,
		RestaurantLocation: req.RestaurantLocation,
	}

	if err := s.menuRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.CreateMenuItemResponse{}, err
	}

	return domain.CreateMenuItemResponse{ID: item.ID}, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	if req.Price < 0 {
		return domain.ErrInvalidPrice
	}

	// Full overwrite of the editable columns, matching the admin form. A row
	// that does not exist is a no-op, not an error.
	fields := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"category":    req.Category,
		"image_url":   req.ImageURL,
	}
	return s.menuRepository.UpdateMenuItem(ctx, id, fields)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMenuItemIDRequired
	}

	if _, err := s.menuRepository.GetMenuItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	return s.menuRepository.DeleteMenuItemCascade(ctx, id)
}

func (s *menuService) UploadMenuImage(ctx context.Context, req domain.UploadMenuImageRequest) (string, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMenuItemNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("menu-item-%s", item.ID)
	var objectKey string
	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Image, "menu-items", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "menu-items", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateMenuItem(ctx, item.ID, map[string]interface{}{"image_url": imageURL}); err != nil {
		return "", err
	}

	return imageURL, nil
}

func (s *menuService) ReseedMenu(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items := SeedMenuItems()
	if err := s.menuRepository.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	return toMenuItemResponses(items), nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:                 item.ID,
		Name:               item.Name,
		Description:        item.Description,
		Price:              item.Price,
		Category:           item.Category,
		ImageURL:           item.ImageURL,
		RestaurantLocation: item.RestaurantLocation,
		CreatedAt:          item.CreatedAt,
	}
}

func toMenuItemResponses(items []*entities.MenuItem) []domain.MenuItemResponse {
	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response
}
