package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReservationService interface {
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error)
		GetUserReservations(ctx context.Context, userID string) ([]domain.ReservationResponse, error)
		GetReservationsByDate(ctx context.Context, day time.Time) ([]domain.ReservationResponse, error)
		UpdateReservationStatus(ctx context.Context, id string, status string) error
		CancelReservation(ctx context.Context, id string, userID string) error
	}

	reservationService struct {
		reservationRepository ReservationRepository
	}
)

func NewReservationService(reservationRepository ReservationRepository) ReservationService {
	return &reservationService{reservationRepository: reservationRepository}
}

func (s *reservationService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error) {
	reservedFor, err := time.Parse(time.RFC3339, req.ReservedFor)
	if err != nil {
		// the booking form also submits plain dates
		reservedFor, err = time.Parse("2006-01-02 15:04", req.ReservedFor)
		if err != nil {
			return domain.ReservationResponse{}, err
		}
	}

	if req.PartySize <= 0 {
		return domain.ReservationResponse{}, domain.ErrInvalidPartySize
	}
	if reservedFor.Before(time.Now()) {
		return domain.ReservationResponse{}, domain.ErrReservationInPast
	}

	reservation := &entities.Reservation{
		ID:           uuid.NewString(),
		UserID:       userID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		PartySize:    req.PartySize,
		ReservedFor:  reservedFor,
		TableNumber:  req.TableNumber,
		Status:       entities.ReservationStatusPending,
		SpecialNotes: req.SpecialNotes,
	}

	if err := s.reservationRepository.CreateReservation(ctx, reservation); err != nil {
		return domain.ReservationResponse{}, err
	}

	return toReservationResponse(reservation), nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string) ([]domain.ReservationResponse, error) {
	reservations, err := s.reservationRepository.GetReservationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toReservationResponses(reservations), nil
}

func (s *reservationService) GetReservationsByDate(ctx context.Context, day time.Time) ([]domain.ReservationResponse, error) {
	reservations, err := s.reservationRepository.GetReservationsByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return toReservationResponses(reservations), nil
}

func (s *reservationService) UpdateReservationStatus(ctx context.Context, id string, status string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.Status == entities.ReservationStatusCancelled {
		return domain.ErrReservationNotEditable
	}

	return s.reservationRepository.UpdateReservationStatus(ctx, id, status)
}

func (s *reservationService) CancelReservation(ctx context.Context, id string, userID string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.UserID != userID {
		return domain.ErrUserNotAllowed
	}

	return s.reservationRepository.UpdateReservationStatus(ctx, id, entities.ReservationStatusCancelled)
}

func toReservationResponse(reservation *entities.Reservation) domain.ReservationResponse {
	return domain.ReservationResponse{
		ID:           reservation.ID,
		CustomerName: reservation.CustomerName,
		Phone:        reservation.Phone,
		PartySize:    reservation.PartySize,
		ReservedFor:  reservation.ReservedFor,
		TableNumber:  reservation.TableNumber,
		Status:       reservation.Status,
		SpecialNotes: reservation.SpecialNotes,
		CreatedAt:    reservation.CreatedAt,
	}
}

func toReservationResponses(reservations []*entities.Reservation) []domain.ReservationResponse {
	response := make([]domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		response = append(response, toReservationResponse(reservation))
	}
	return response
}
