package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetMenu         = "menu items retrieved successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item and related order items deleted successfully"
	MessageSuccessUploadMenuImage = "menu image uploaded successfully"
	MessageSuccessReseedMenu      = "menu reseeded successfully"

	MessageFailedGetMenu         = "failed to load menu items"
	MessageFailedCreateMenuItem  = "failed to create menu item"
	MessageFailedUpdateMenuItem  = "failed to update menu item"
	MessageFailedDeleteMenuItem  = "failed to delete menu item"
	MessageFailedUploadMenuImage = "failed to upload menu image"
	MessageFailedReseedMenu      = "failed to reseed menu"

	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrMenuItemIDRequired    = errors.New("menu item ID is required")
	ErrMissingRequiredFields = errors.New("name, price, category, and restaurant location are required")
	ErrInvalidPrice          = errors.New("price must be a valid non-negative number")
)

type (
	CreateMenuItemRequest struct {
		Name               string  `json:"name" validate:"required"`
		Description        string  `json:"description"`
		Price              float64 `json:"price" validate:"required,gte=0"`
		Category           string  `json:"category" validate:"required"`
		ImageURL           string  `json:"image_url"`
		RestaurantLocation string  `json:"restaurant_location" validate:"required"`
	}

	CreateMenuItemResponse struct {
		ID string `json:"id"`
	}

	UpdateMenuItemRequest struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price" validate:"omitempty,gte=0"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
	}

	UploadMenuImageRequest struct {
		MenuItemID string                `json:"menu_id" form:"menu_id" validate:"required"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID                 string    `json:"id"`
		Name               string    `json:"name"`
		Description        string    `json:"description,omitempty"`
		Price              float64   `json:"price"`
		Category           string    `json:"category"`
		ImageURL           string    `json:"image_url,omitempty"`
		RestaurantLocation string    `json:"restaurant_location"`
		CreatedAt          time.Time `json:"created_at"`
	}
)
