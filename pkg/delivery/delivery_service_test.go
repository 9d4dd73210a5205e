package delivery

import (
	"context"
	"testing"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) GetDeliveryByID(ctx context.Context, id string) (*entities.DeliveryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DeliveryRecord), args.Error(1)
}

func (m *MockDeliveryRepository) GetDeliveriesByOrder(ctx context.Context, orderID string) ([]*entities.DeliveryRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DeliveryRecord), args.Error(1)
}

func (m *MockDeliveryRepository) GetDeliveries(ctx context.Context, status string) ([]*entities.DeliveryRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DeliveryRecord), args.Error(1)
}

func (m *MockDeliveryRepository) UpdateDeliveryStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestDeliveryService_GetDeliveriesByOrder(t *testing.T) {
	repo := new(MockDeliveryRepository)
	repo.On("GetDeliveriesByOrder", mock.Anything, "order-1").Return([]*entities.DeliveryRecord{
		{
			ID:               "del-1",
			OrderID:          "order-1",
			MenuID:           "menu-1",
			Quantity:         2,
			DeliveryLocation: "12 MG Road, Bangalore",
			PickupLocation:   "The Rameshwaram Cafe",
			Status:           entities.DeliveryStatusPending,
		},
	}, nil)

	service := NewDeliveryService(repo)
	res, err := service.GetDeliveriesByOrder(context.Background(), "order-1")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "The Rameshwaram Cafe", res[0].PickupLocation)
	assert.Equal(t, "12 MG Road, Bangalore", res[0].DeliveryLocation)
}

func TestDeliveryService_UpdateDeliveryStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		next          string
		expectedError error
	}{
		{name: "pending to preparing", current: entities.DeliveryStatusPending, next: entities.DeliveryStatusPreparing},
		{name: "out-for-delivery to delivered", current: entities.DeliveryStatusOutForDelivery, next: entities.DeliveryStatusDelivered},
		{name: "delivered is terminal", current: entities.DeliveryStatusDelivered, next: entities.DeliveryStatusPending, expectedError: domain.ErrInvalidDeliveryTransition},
		{name: "cannot cancel after dispatch", current: entities.DeliveryStatusOutForDelivery, next: entities.DeliveryStatusCancelled, expectedError: domain.ErrInvalidDeliveryTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDeliveryRepository)
			repo.On("GetDeliveryByID", mock.Anything, "del-1").
				Return(&entities.DeliveryRecord{ID: "del-1", Status: tt.current}, nil)
			if tt.expectedError == nil {
				repo.On("UpdateDeliveryStatus", mock.Anything, "del-1", tt.next).Return(nil)
			}

			service := NewDeliveryService(repo)
			err := service.UpdateDeliveryStatus(context.Background(), "del-1", tt.next)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
			}
		})
	}

	t.Run("unknown delivery", func(t *testing.T) {
		repo := new(MockDeliveryRepository)
		repo.On("GetDeliveryByID", mock.Anything, "del-404").Return(nil, gorm.ErrRecordNotFound)

		service := NewDeliveryService(repo)
		err := service.UpdateDeliveryStatus(context.Background(), "del-404", entities.DeliveryStatusPreparing)

		assert.ErrorIs(t, err, domain.ErrDeliveryNotFound)
	})
}
