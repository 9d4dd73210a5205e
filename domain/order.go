package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder        = "order placed successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"

	MessageFailedPlaceOrder        = "failed to place order"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrUserNotFound            = errors.New("user not found, please login again")
	ErrEmptyOrder              = errors.New("order must include at least one item")
	ErrMissingUserID           = errors.New("user ID is required")
	ErrMissingDeliveryAddress  = errors.New("delivery address is required")
	ErrNoValidItems            = errors.New("none of the menu items exist in the database")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
)

type (
	OrderItemRequest struct {
		MenuID   string  `json:"id" validate:"required"`
		Quantity int     `json:"quantity" validate:"required,min=1"`
		Price    float64 `json:"price" validate:"gte=0"`
	}

	PlaceOrderRequest struct {
		UserID          string             `json:"user_id"`
		Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
		DeliveryAddress string             `json:"delivery_address" validate:"required"`
		TotalAmount     float64            `json:"total_amount" validate:"gte=0"`
		IdempotencyKey  string             `json:"idempotency_key"`
	}

	// PlaceOrderResponse reports partial acceptance explicitly: items whose
	// menu ids were unknown at order time end up in RejectedMenuIDs instead
	// of being dropped without a trace.
	PlaceOrderResponse struct {
		OrderID         string             `json:"order_id"`
		TotalAmount     float64            `json:"total_amount"`
		Status          string             `json:"status"`
		AcceptedItems   []OrderItemRequest `json:"accepted_items"`
		RejectedMenuIDs []string           `json:"rejected_menu_ids,omitempty"`
	}

	OrderItemResponse struct {
		ID       string  `json:"id"`
		MenuID   string  `json:"menu_id"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}

	OrderResponse struct {
		ID          string              `json:"id"`
		UserID      string              `json:"user_id"`
		TotalAmount float64             `json:"total_amount"`
		Status      string              `json:"status"`
		Items       []OrderItemResponse `json:"items,omitempty"`
		CreatedAt   time.Time           `json:"created_at"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)
