package accounting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vini-501/FoodBase/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountingRepository struct {
	mock.Mock
}

func (m *MockAccountingRepository) GetRevenue(ctx context.Context, start, end time.Time) (float64, int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountingRepository) GetRevenueByCategory(ctx context.Context, start, end time.Time) ([]domain.CategoryRevenue, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryRevenue), args.Error(1)
}

func (m *MockAccountingRepository) GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]domain.TopMenuItem, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopMenuItem), args.Error(1)
}

func TestAccountingService_GetFinancialSummary(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates revenue with average", func(t *testing.T) {
		repo := new(MockAccountingRepository)
		repo.On("GetRevenue", mock.Anything, start, end).Return(2400.0, int64(12), nil)
		repo.On("GetRevenueByCategory", mock.Anything, start, end).Return([]domain.CategoryRevenue{
			{Category: "Breakfast", Revenue: 1600, Quantity: 20},
			{Category: "Beverages", Revenue: 800, Quantity: 26},
		}, nil)
		repo.On("GetTopItems", mock.Anything, start, end, 5).Return([]domain.TopMenuItem{
			{MenuID: "menu-1", Name: "Open Butter Masala Dosa", Quantity: 14, Revenue: 1120},
		}, nil)

		service := NewAccountingService(repo)
		res, err := service.GetFinancialSummary(context.Background(), start, end)

		assert.NoError(t, err)
		assert.Equal(t, 2400.0, res.TotalRevenue)
		assert.Equal(t, int64(12), res.OrderCount)
		assert.Equal(t, 200.0, res.AverageOrderValue)
		assert.Len(t, res.ByCategory, 2)
		assert.Len(t, res.TopItems, 1)
	})

	t.Run("no orders means zero average", func(t *testing.T) {
		repo := new(MockAccountingRepository)
		repo.On("GetRevenue", mock.Anything, start, end).Return(0.0, int64(0), nil)
		repo.On("GetRevenueByCategory", mock.Anything, start, end).Return([]domain.CategoryRevenue{}, nil)
		repo.On("GetTopItems", mock.Anything, start, end, 5).Return([]domain.TopMenuItem{}, nil)

		service := NewAccountingService(repo)
		res, err := service.GetFinancialSummary(context.Background(), start, end)

		assert.NoError(t, err)
		assert.Zero(t, res.AverageOrderValue)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := new(MockAccountingRepository)
		repo.On("GetRevenue", mock.Anything, start, end).Return(0.0, int64(0), errors.New("connection refused"))

		service := NewAccountingService(repo)
		_, err := service.GetFinancialSummary(context.Background(), start, end)

		assert.Error(t, err)
	})
}
