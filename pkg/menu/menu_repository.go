package menu

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetMenuItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error)
		GetCategories(ctx context.Context) ([]string, error)
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		UpdateMenuItem(ctx context.Context, id string, fields map[string]interface{}) error
		DeleteMenuItemCascade(ctx context.Context, id string) error
		ReplaceAll(ctx context.Context, items []*entities.MenuItem) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Order("category, name").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetMenuItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.MenuItem{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateMenuItem overwrites the given columns for the row matching id. A
// missing row is not an error; callers that care must check existence first.
func (r *menuRepository) UpdateMenuItem(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.MenuItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteMenuItemCascade removes the menu item together with every order item
// that references it, in one transaction. Historical orders themselves are
// kept.
func (r *menuRepository) DeleteMenuItemCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&entities.MenuItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// ReplaceAll clears the menu and inserts the given items, used by seeding.
func (r *menuRepository) ReplaceAll(ctx context.Context, items []*entities.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.MenuItem{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
