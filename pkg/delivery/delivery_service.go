package delivery

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

var deliveryTransitions = map[string][]string{
	entities.DeliveryStatusPending:        {entities.DeliveryStatusPreparing, entities.DeliveryStatusCancelled},
	entities.DeliveryStatusPreparing:      {entities.DeliveryStatusOutForDelivery, entities.DeliveryStatusCancelled},
	entities.DeliveryStatusOutForDelivery: {entities.DeliveryStatusDelivered},
}

type (
	DeliveryService interface {
		GetDeliveriesByOrder(ctx context.Context, orderID string) ([]domain.DeliveryResponse, error)
		GetDeliveries(ctx context.Context, status string) ([]domain.DeliveryResponse, error)
		UpdateDeliveryStatus(ctx context.Context, id string, status string) error
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
	}
)

func NewDeliveryService(deliveryRepository DeliveryRepository) DeliveryService {
	return &deliveryService{deliveryRepository: deliveryRepository}
}

func (s *deliveryService) GetDeliveriesByOrder(ctx context.Context, orderID string) ([]domain.DeliveryResponse, error) {
	records, err := s.deliveryRepository.GetDeliveriesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponses(records), nil
}

func (s *deliveryService) GetDeliveries(ctx context.Context, status string) ([]domain.DeliveryResponse, error) {
	records, err := s.deliveryRepository.GetDeliveries(ctx, status)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponses(records), nil
}

func (s *deliveryService) UpdateDeliveryStatus(ctx context.Context, id string, status string) error {
	record, err := s.deliveryRepository.GetDeliveryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDeliveryNotFound
		}
		return err
	}

	allowed := false
	for _, next := range deliveryTransitions[record.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.ErrInvalidDeliveryTransition
	}

	return s.deliveryRepository.UpdateDeliveryStatus(ctx, id, status)
}

func toDeliveryResponses(records []*entities.DeliveryRecord) []domain.DeliveryResponse {
	response := make([]domain.DeliveryResponse, 0, len(records))
	for _, record := range records {
		response = append(response, domain.DeliveryResponse{
			ID:               record.ID,
			OrderID:          record.OrderID,
			MenuID:           record.MenuID,
			Quantity:         record.Quantity,
			DeliveryLocation: record.DeliveryLocation,
			PickupLocation:   record.PickupLocation,
			Status:           record.Status,
			CreatedAt:        record.CreatedAt,
		})
	}
	return response
}
