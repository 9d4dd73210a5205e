package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetReservationsByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetReservationsByDate(ctx context.Context, day time.Time) ([]*entities.Reservation, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestReservationService_CreateReservation(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)

	t.Run("valid booking", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("CreateReservation", mock.Anything, mock.MatchedBy(func(r *entities.Reservation) bool {
			return r.ID != "" && r.UserID == "user-1" && r.Status == entities.ReservationStatusPending
		})).Return(nil)

		service := NewReservationService(repo)
		res, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
			CustomerName: "Asha",
			PartySize:    4,
			ReservedFor:  tomorrow.Format(time.RFC3339),
			TableNumber:  6,
		}, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, entities.ReservationStatusPending, res.Status)
		assert.Equal(t, 4, res.PartySize)
		repo.AssertExpectations(t)
	})

	t.Run("plain date format accepted", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("CreateReservation", mock.Anything, mock.Anything).Return(nil)

		service := NewReservationService(repo)
		_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
			CustomerName: "Asha",
			PartySize:    2,
			ReservedFor:  tomorrow.Format("2006-01-02 15:04"),
		}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("unparseable time", func(t *testing.T) {
		service := NewReservationService(new(MockReservationRepository))
		_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
			CustomerName: "Asha",
			PartySize:    2,
			ReservedFor:  "next friday",
		}, "user-1")

		assert.Error(t, err)
	})

	t.Run("party size must be positive", func(t *testing.T) {
		service := NewReservationService(new(MockReservationRepository))
		_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
			CustomerName: "Asha",
			PartySize:    0,
			ReservedFor:  tomorrow.Format(time.RFC3339),
		}, "user-1")

		assert.ErrorIs(t, err, domain.ErrInvalidPartySize)
	})

	t.Run("no bookings in the past", func(t *testing.T) {
		service := NewReservationService(new(MockReservationRepository))
		_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
			CustomerName: "Asha",
			PartySize:    2,
			ReservedFor:  time.Now().Add(-time.Hour).Format(time.RFC3339),
		}, "user-1")

		assert.ErrorIs(t, err, domain.ErrReservationInPast)
	})
}

func TestReservationService_UpdateReservationStatus(t *testing.T) {
	t.Run("pending reservation can be confirmed", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("GetReservationByID", mock.Anything, "res-1").
			Return(&entities.Reservation{ID: "res-1", Status: entities.ReservationStatusPending}, nil)
		repo.On("UpdateReservationStatus", mock.Anything, "res-1", entities.ReservationStatusConfirmed).Return(nil)

		service := NewReservationService(repo)
		err := service.UpdateReservationStatus(context.Background(), "res-1", entities.ReservationStatusConfirmed)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("cancelled reservation is frozen", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("GetReservationByID", mock.Anything, "res-1").
			Return(&entities.Reservation{ID: "res-1", Status: entities.ReservationStatusCancelled}, nil)

		service := NewReservationService(repo)
		err := service.UpdateReservationStatus(context.Background(), "res-1", entities.ReservationStatusConfirmed)

		assert.ErrorIs(t, err, domain.ErrReservationNotEditable)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("GetReservationByID", mock.Anything, "res-404").Return(nil, gorm.ErrRecordNotFound)

		service := NewReservationService(repo)
		err := service.UpdateReservationStatus(context.Background(), "res-404", entities.ReservationStatusConfirmed)

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestReservationService_CancelReservation(t *testing.T) {
	t.Run("owner can cancel", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("GetReservationByID", mock.Anything, "res-1").
			Return(&entities.Reservation{ID: "res-1", UserID: "user-1", Status: entities.ReservationStatusConfirmed}, nil)
		repo.On("UpdateReservationStatus", mock.Anything, "res-1", entities.ReservationStatusCancelled).Return(nil)

		service := NewReservationService(repo)
		err := service.CancelReservation(context.Background(), "res-1", "user-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's booking stays", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("GetReservationByID", mock.Anything, "res-1").
			Return(&entities.Reservation{ID: "res-1", UserID: "user-1"}, nil)

		service := NewReservationService(repo)
		err := service.CancelReservation(context.Background(), "res-1", "user-2")

		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
		repo.AssertNotCalled(t, "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
