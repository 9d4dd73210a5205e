package tableservice

import (
	"context"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	TableRepository interface {
		GetTables(ctx context.Context) ([]*entities.DiningTable, error)
		GetTableByNumber(ctx context.Context, number int) (*entities.DiningTable, error)
		UpdateTable(ctx context.Context, table *entities.DiningTable) error
		CountTables(ctx context.Context) (int64, error)
		CreateTable(ctx context.Context, table *entities.DiningTable) error
	}

	tableRepository struct {
		db *gorm.DB
	}
)

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) GetTables(ctx context.Context) ([]*entities.DiningTable, error) {
	var tables []*entities.DiningTable
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) GetTableByNumber(ctx context.Context, number int) (*entities.DiningTable, error) {
	var table entities.DiningTable
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) UpdateTable(ctx context.Context, table *entities.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) CountTables(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.DiningTable{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *tableRepository) CreateTable(ctx context.Context, table *entities.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}
