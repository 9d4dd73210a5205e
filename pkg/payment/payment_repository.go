package payment

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreatePayment(ctx context.Context, payment *entities.PaymentTransaction) error
		GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		UpdatePayment(ctx context.Context, payment *entities.PaymentTransaction) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var payment entities.PaymentTransaction
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, payment *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
