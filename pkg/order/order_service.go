package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"
	"github.com/vini-501/FoodBase/internal/utils/mailing"
	"github.com/vini-501/FoodBase/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// legal order status transitions; cancellation is only possible before the
// food leaves the kitchen
var orderTransitions = map[string][]string{
	entities.OrderStatusPending:        {entities.OrderStatusPreparing, entities.OrderStatusCancelled},
	entities.OrderStatusPreparing:      {entities.OrderStatusOutForDelivery, entities.OrderStatusCancelled},
	entities.OrderStatusOutForDelivery: {entities.OrderStatusDelivered},
}

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error)
		GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) error
	}

	orderService struct {
		orderRepository OrderRepository
		userRepository  user.UserRepository
	}
)

func NewOrderService(orderRepository OrderRepository, userRepository user.UserRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error) {
	// fail fast before any transaction is opened
	if req.UserID == "" {
		return domain.PlaceOrderResponse{}, domain.ErrMissingUserID
	}
	if len(req.Items) == 0 {
		return domain.PlaceOrderResponse{}, domain.ErrEmptyOrder
	}
	if req.DeliveryAddress == "" {
		return domain.PlaceOrderResponse{}, domain.ErrMissingDeliveryAddress
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.PlaceOrderResponse{}, domain.ErrInvalidQuantity
		}
	}

	totalAmount := req.TotalAmount
	if totalAmount == 0 {
		for _, item := range req.Items {
			totalAmount += item.Price * float64(item.Quantity)
		}
	}

	// replaying a request with a known idempotency key returns the original
	// order instead of writing a duplicate
	var idempotencyKey *string
	if req.IdempotencyKey != "" {
		existing, err := s.orderRepository.GetOrderByIdempotencyKey(ctx, req.IdempotencyKey)
		if err != nil {
			return domain.PlaceOrderResponse{}, err
		}
		if existing != nil {
			return domain.PlaceOrderResponse{
				OrderID:       existing.ID,
				TotalAmount:   existing.TotalAmount,
				Status:        existing.Status,
				AcceptedItems: toItemRequests(existing.Items),
			}, nil
		}
		idempotencyKey = &req.IdempotencyKey
	}

	order := &entities.Order{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		TotalAmount:    totalAmount,
		Status:         entities.OrderStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	requested := make([]RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		requested = append(requested, RequestedItem{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	accepted, rejected, err := s.orderRepository.PlaceOrder(ctx, order, requested, req.DeliveryAddress)
	if err != nil {
		return domain.PlaceOrderResponse{}, err
	}

	go s.sendConfirmationEmail(order)

	acceptedItems := make([]domain.OrderItemRequest, 0, len(accepted))
	for _, item := range accepted {
		acceptedItems = append(acceptedItems, domain.OrderItemRequest{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return domain.PlaceOrderResponse{
		OrderID:         order.ID,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		AcceptedItems:   acceptedItems,
		RejectedMenuIDs: rejected,
	}, nil
}

// sendConfirmationEmail is best effort; a mail failure never affects the
// committed order.
func (s *orderService) sendConfirmationEmail(order *entities.Order) {
	customer, err := s.userRepository.GetUserByID(context.Background(), order.UserID)
	if err != nil {
		log.Printf("order %s: could not load user for confirmation email: %v", order.ID, err)
		return
	}

	subject := "Your FoodBase order is confirmed"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <b>%s</b> totalling %.2f has been received and is being prepared.</p>",
		customer.Username, order.ID, order.TotalAmount,
	)
	if err := mailing.SendMail(customer.Email, subject, body); err != nil {
		log.Printf("order %s: confirmation email failed: %v", order.ID, err)
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	if !transitionAllowed(order.Status, status) {
		return domain.ErrInvalidStatusTransition
	}

	return s.orderRepository.UpdateOrderStatus(ctx, id, status)
}

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func toItemRequests(items []*entities.OrderItem) []domain.OrderItemRequest {
	result := make([]domain.OrderItemRequest, 0, len(items))
	for _, item := range items {
		result = append(result, domain.OrderItemRequest{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return result
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderItemResponse{
			ID:       item.ID,
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return domain.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
