package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePayment = "payment transaction created successfully"
	MessageFailedCreatePayment  = "failed to create payment transaction"

	ErrPaymentNotFound    = errors.New("payment transaction not found")
	ErrOrderAlreadyPaid   = errors.New("order already has a settled payment")
	ErrMidtransProcessing = errors.New("midtrans processing failed")
)

type (
	CreatePaymentRequest struct {
		OrderID string `json:"order_id" validate:"required"`
	}

	CreatePaymentResponse struct {
		PaymentID   string  `json:"payment_id"`
		OrderID     string  `json:"order_id"`
		GrossAmount float64 `json:"gross_amount"`
		SnapToken   string  `json:"snap_token"`
		RedirectURL string  `json:"redirect_url"`
		Status      string  `json:"status"`
	}

	MidtransNotificationRequest struct {
		TransactionStatus string `json:"transaction_status"`
		OrderID           string `json:"order_id"`
		PaymentType       string `json:"payment_type"`
		FraudStatus       string `json:"fraud_status"`
	}
)
