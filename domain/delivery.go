package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDeliveries        = "deliveries retrieved successfully"
	MessageSuccessUpdateDeliveryStatus = "delivery status updated successfully"

	MessageFailedGetDeliveries        = "failed to retrieve deliveries"
	MessageFailedUpdateDeliveryStatus = "failed to update delivery status"

	ErrDeliveryNotFound          = errors.New("delivery record not found")
	ErrInvalidDeliveryTransition = errors.New("invalid delivery status transition")
)

type (
	DeliveryResponse struct {
		ID               string    `json:"id"`
		OrderID          string    `json:"order_id"`
		MenuID           string    `json:"menu_id"`
		Quantity         int       `json:"quantity"`
		DeliveryLocation string    `json:"delivery_location"`
		PickupLocation   string    `json:"pickup_location"`
		Status           string    `json:"status"`
		CreatedAt        time.Time `json:"created_at"`
	}

	UpdateDeliveryStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)
