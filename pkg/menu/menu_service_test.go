package menu

import (
	"context"
	"math"
	"testing"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetMenuItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMenuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateMenuItem(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteMenuItemCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) ReplaceAll(ctx context.Context, items []*entities.MenuItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	valid := domain.CreateMenuItemRequest{
		Name:               "Filter Coffee",
		Description:        "South Indian filter coffee in a steel tumbler",
		Price:              30,
		Category:           "Beverages",
		RestaurantLocation: "Koshy's - 39, St. Mark's Road, Bangalore",
	}

	tests := []struct {
		name          string
		request       domain.CreateMenuItemRequest
		setupMocks    func(*MockMenuRepository)
		expectedError error
	}{
		{
			name:    "valid item",
			request: valid,
			setupMocks: func(repo *MockMenuRepository) {
				repo.On("CreateMenuItem", mock.Anything, mock.MatchedBy(func(item *entities.MenuItem) bool {
					return item.ID != "" && item.Name == "Filter Coffee" && item.Price == 30
				})).Return(nil)
			},
		},
		{
			name: "missing name",
			request: domain.CreateMenuItemRequest{
				Price:              30,
				Category:           "Beverages",
				RestaurantLocation: "Koshy's",
			},
			expectedError: domain.ErrMissingRequiredFields,
		},
		{
			name: "missing restaurant location",
			request: domain.CreateMenuItemRequest{
				Name:     "Filter Coffee",
				Price:    30,
				Category: "Beverages",
			},
			expectedError: domain.ErrMissingRequiredFields,
		},
		{
			name: "negative price",
			request: domain.CreateMenuItemRequest{
				Name:               "Filter Coffee",
				Price:              -1,
				Category:           "Beverages",
				RestaurantLocation: "Koshy's",
			},
			expectedError: domain.ErrInvalidPrice,
		},
		{
			name: "NaN price",
			request: domain.CreateMenuItemRequest{
				Name:               "Filter Coffee",
				Price:              math.NaN(),
				Category:           "Beverages",
				RestaurantLocation: "Koshy's",
			},
			expectedError: domain.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMenuRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			service := NewMenuService(repo, nil)
			res, err := service.CreateMenuItem(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_GetMenuItemByID(t *testing.T) {
	t.Run("existing item", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("GetMenuItemByID", mock.Anything, "menu-1").Return(&entities.MenuItem{
			ID:                 "menu-1",
			Name:               "Open Butter Masala Dosa",
			Price:              80,
			Category:           "Breakfast",
			RestaurantLocation: "The Rameshwaram Cafe",
		}, nil)

		service := NewMenuService(repo, nil)
		res, err := service.GetMenuItemByID(context.Background(), "menu-1")

		assert.NoError(t, err)
		assert.Equal(t, "Open Butter Masala Dosa", res.Name)
		assert.Equal(t, 80.0, res.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("GetMenuItemByID", mock.Anything, "menu-404").Return(nil, gorm.ErrRecordNotFound)

		service := NewMenuService(repo, nil)
		_, err := service.GetMenuItemByID(context.Background(), "menu-404")

		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
	})
}

func TestMenuService_UpdateMenuItem(t *testing.T) {
	t.Run("overwrites editable columns", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("UpdateMenuItem", mock.Anything, "menu-1", map[string]interface{}{
			"name":        "Masala Dosa",
			"description": "",
			"price":       90.0,
			"category":    "Breakfast",
			"image_url":   "",
		}).Return(nil)

		service := NewMenuService(repo, nil)
		err := service.UpdateMenuItem(context.Background(), "menu-1", domain.UpdateMenuItemRequest{
			Name:     "Masala Dosa",
			Price:    90,
			Category: "Breakfast",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("absent row is a no-op", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("UpdateMenuItem", mock.Anything, "menu-404", mock.Anything).Return(nil)

		service := NewMenuService(repo, nil)
		err := service.UpdateMenuItem(context.Background(), "menu-404", domain.UpdateMenuItemRequest{Name: "Ghost"})

		assert.NoError(t, err)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		repo := new(MockMenuRepository)

		service := NewMenuService(repo, nil)
		err := service.UpdateMenuItem(context.Background(), "menu-1", domain.UpdateMenuItemRequest{Price: -5})

		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
		repo.AssertNotCalled(t, "UpdateMenuItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMenuService_DeleteMenuItem(t *testing.T) {
	t.Run("deletes existing item with its order items", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("GetMenuItemByID", mock.Anything, "menu-1").Return(&entities.MenuItem{ID: "menu-1"}, nil)
		repo.On("DeleteMenuItemCascade", mock.Anything, "menu-1").Return(nil)

		service := NewMenuService(repo, nil)
		err := service.DeleteMenuItem(context.Background(), "menu-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		service := NewMenuService(new(MockMenuRepository), nil)
		err := service.DeleteMenuItem(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrMenuItemIDRequired)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("GetMenuItemByID", mock.Anything, "menu-404").Return(nil, gorm.ErrRecordNotFound)

		service := NewMenuService(repo, nil)
		err := service.DeleteMenuItem(context.Background(), "menu-404")

		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
		repo.AssertNotCalled(t, "DeleteMenuItemCascade", mock.Anything, mock.Anything)
	})
}

func TestMenuService_ReseedMenu(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(items []*entities.MenuItem) bool {
		return len(items) == 12 && items[0].ID == "menu-1"
	})).Return(nil)

	service := NewMenuService(repo, nil)
	res, err := service.ReseedMenu(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 12)
	repo.AssertExpectations(t)
}

func TestSeedMenuItems(t *testing.T) {
	items := SeedMenuItems()

	assert.Len(t, items, 12)
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Category)
		assert.NotEmpty(t, item.RestaurantLocation)
		assert.Greater(t, item.Price, 0.0)
	}
}
