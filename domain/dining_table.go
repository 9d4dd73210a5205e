package domain

import (
	"errors"
)

var (
	MessageSuccessGetTables    = "tables retrieved successfully"
	MessageSuccessReserveTable = "table reserved successfully"
	MessageSuccessOccupyTable  = "table occupied successfully"
	MessageSuccessReleaseTable = "table released successfully"

	MessageFailedGetTables    = "failed to retrieve tables"
	MessageFailedReserveTable = "failed to reserve table"
	MessageFailedOccupyTable  = "failed to occupy table"
	MessageFailedReleaseTable = "failed to release table"

	ErrTableNotFound       = errors.New("table not found")
	ErrTableNotAvailable   = errors.New("table is not available")
	ErrCustomerNameMissing = errors.New("customer name is required")
)

type (
	TableActionRequest struct {
		CustomerName string `json:"customer_name" validate:"required"`
	}

	DiningTableResponse struct {
		ID           string `json:"id"`
		Number       int    `json:"number"`
		Capacity     int    `json:"capacity"`
		Status       string `json:"status"`
		CustomerName string `json:"customer_name,omitempty"`
	}
)
