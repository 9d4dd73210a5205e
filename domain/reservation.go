package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateReservation = "reservation created successfully"
	MessageSuccessGetReservations   = "reservations retrieved successfully"
	MessageSuccessUpdateReservation = "reservation updated successfully"
	MessageSuccessCancelReservation = "reservation cancelled successfully"

	MessageFailedCreateReservation = "failed to create reservation"
	MessageFailedGetReservations   = "failed to retrieve reservations"
	MessageFailedUpdateReservation = "failed to update reservation"
	MessageFailedCancelReservation = "failed to cancel reservation"

	ErrReservationNotFound    = errors.New("reservation not found")
	ErrInvalidPartySize       = errors.New("party size must be positive")
	ErrReservationInPast      = errors.New("reservation time must be in the future")
	ErrReservationNotEditable = errors.New("cancelled reservations cannot be changed")
)

type (
	CreateReservationRequest struct {
		CustomerName string `json:"customer_name" validate:"required"`
		Phone        string `json:"phone"`
		PartySize    int    `json:"party_size" validate:"required,min=1"`
		ReservedFor  string `json:"reserved_for" validate:"required"`
		TableNumber  int    `json:"table_number"`
		SpecialNotes string `json:"special_notes"`
	}

	ReservationResponse struct {
		ID           string    `json:"id"`
		CustomerName string    `json:"customer_name"`
		Phone        string    `json:"phone,omitempty"`
		PartySize    int       `json:"party_size"`
		ReservedFor  time.Time `json:"reserved_for"`
		TableNumber  int       `json:"table_number,omitempty"`
		Status       string    `json:"status"`
		SpecialNotes string    `json:"special_notes,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UpdateReservationStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)
