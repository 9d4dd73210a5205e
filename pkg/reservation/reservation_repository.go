package reservation

import (
	"context"
	"time"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		GetReservationsByUser(ctx context.Context, userID string) ([]*entities.Reservation, error)
		GetReservationsByDate(ctx context.Context, day time.Time) ([]*entities.Reservation, error)
		UpdateReservationStatus(ctx context.Context, id string, status string) error
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetReservationsByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	var reservations []*entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reserved_for ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) GetReservationsByDate(ctx context.Context, day time.Time) ([]*entities.Reservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var reservations []*entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("reserved_for >= ? AND reserved_for < ?", start, end).
		Order("reserved_for ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) UpdateReservationStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}
