package accounting

import (
	"context"
	"time"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	AccountingRepository interface {
		GetRevenue(ctx context.Context, start, end time.Time) (float64, int64, error)
		GetRevenueByCategory(ctx context.Context, start, end time.Time) ([]domain.CategoryRevenue, error)
		GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]domain.TopMenuItem, error)
	}

	accountingRepository struct {
		db *gorm.DB
	}
)

func NewAccountingRepository(db *gorm.DB) AccountingRepository {
	return &accountingRepository{db: db}
}

// GetRevenue sums order totals in [start, end); cancelled orders do not count
// towards revenue.
func (r *accountingRepository) GetRevenue(ctx context.Context, start, end time.Time) (float64, int64, error) {
	var result struct {
		Revenue float64
		Count   int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ? AND status <> ?", start, end, entities.OrderStatusCancelled).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}

	return result.Revenue, result.Count, nil
}

func (r *accountingRepository) GetRevenueByCategory(ctx context.Context, start, end time.Time) ([]domain.CategoryRevenue, error) {
	var rows []domain.CategoryRevenue

	query := `
		SELECT m.category AS category,
		       COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue,
		       COALESCE(SUM(oi.quantity), 0) AS quantity
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= ? AND o.created_at < ? AND o.status <> ?
		GROUP BY m.category
		ORDER BY revenue DESC
	`

	if err := r.db.WithContext(ctx).
		Raw(query, start, end, entities.OrderStatusCancelled).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *accountingRepository) GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]domain.TopMenuItem, error) {
	var rows []domain.TopMenuItem

	query := `
		SELECT oi.menu_id AS menu_id,
		       m.name AS name,
		       COALESCE(SUM(oi.quantity), 0) AS quantity,
		       COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= ? AND o.created_at < ? AND o.status <> ?
		GROUP BY oi.menu_id, m.name
		ORDER BY quantity DESC
		LIMIT ?
	`

	if err := r.db.WithContext(ctx).
		Raw(query, start, end, entities.OrderStatusCancelled, limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
