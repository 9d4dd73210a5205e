package delivery

import (
	"context"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	DeliveryRepository interface {
		GetDeliveryByID(ctx context.Context, id string) (*entities.DeliveryRecord, error)
		GetDeliveriesByOrder(ctx context.Context, orderID string) ([]*entities.DeliveryRecord, error)
		GetDeliveries(ctx context.Context, status string) ([]*entities.DeliveryRecord, error)
		UpdateDeliveryStatus(ctx context.Context, id string, status string) error
	}

	deliveryRepository struct {
		db *gorm.DB
	}
)

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) GetDeliveryByID(ctx context.Context, id string) (*entities.DeliveryRecord, error) {
	var record entities.DeliveryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *deliveryRepository) GetDeliveriesByOrder(ctx context.Context, orderID string) ([]*entities.DeliveryRecord, error) {
	var records []*entities.DeliveryRecord
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *deliveryRepository) GetDeliveries(ctx context.Context, status string) ([]*entities.DeliveryRecord, error) {
	var records []*entities.DeliveryRecord

	query := r.db.WithContext(ctx)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *deliveryRepository) UpdateDeliveryStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.DeliveryRecord{}).
		Where("id = ?", id).
		Update("status", status).Error
}
