package order

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestedItem is one line of an incoming order before it has been checked
// against the menu.
type RequestedItem struct {
	MenuID   string
	Quantity int
	Price    float64
}

type (
	OrderRepository interface {
		PlaceOrder(ctx context.Context, order *entities.Order, requested []RequestedItem, deliveryAddress string) (accepted []RequestedItem, rejected []string, err error)
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrderByIdempotencyKey(ctx context.Context, key string) (*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// PlaceOrder runs the whole multi-table write in one transaction: verify the
// user, keep only requested items whose menu ids exist, then insert the order
// with one order item and one delivery record per surviving line. Any error
// rolls the whole thing back; gorm returns the connection to the pool on
// every exit path.
func (r *orderRepository) PlaceOrder(ctx context.Context, order *entities.Order, requested []RequestedItem, deliveryAddress string) ([]RequestedItem, []string, error) {
	var accepted []RequestedItem
	var rejected []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Select("id").Where("id = ?", order.UserID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		menuByID := make(map[string]*entities.MenuItem, len(requested))
		for _, item := range requested {
			var menuItem entities.MenuItem
			if err := tx.Where("id = ?", item.MenuID).First(&menuItem).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					rejected = append(rejected, item.MenuID)
					continue
				}
				return err
			}
			menuByID[menuItem.ID] = &menuItem
			accepted = append(accepted, item)
		}

		if len(accepted) == 0 {
			return domain.ErrNoValidItems
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range accepted {
			orderItem := &entities.OrderItem{
				ID:       uuid.NewString(),
				OrderID:  order.ID,
				MenuID:   item.MenuID,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
			if err := tx.Create(orderItem).Error; err != nil {
				return err
			}

			delivery := &entities.DeliveryRecord{
				ID:               uuid.NewString(),
				OrderID:          order.ID,
				MenuID:           item.MenuID,
				Quantity:         item.Quantity,
				DeliveryLocation: deliveryAddress,
				PickupLocation:   menuByID[item.MenuID].RestaurantLocation,
				Status:           entities.DeliveryStatusPending,
			}
			if err := tx.Create(delivery).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return accepted, rejected, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByIdempotencyKey(ctx context.Context, key string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("idempotency_key = ?", key).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
