package handlers

import (
	"errors"
	"time"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReservationHandler interface {
		CreateReservation(c *fiber.Ctx) error
		GetMyReservations(c *fiber.Ctx) error
		GetReservationsByDate(c *fiber.Ctx) error
		UpdateReservationStatus(c *fiber.Ctx) error
		CancelReservation(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewReservationHandler(reservationService reservation.ReservationService, validator *validator.Validate) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *reservationHandler) CreateReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateReservationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	res, err := h.reservationService.CreateReservation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *reservationHandler) GetMyReservations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reservationService.GetUserReservations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) GetReservationsByDate(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	day := time.Now()
	if dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReservations, err)
		}
		day = parsed
	}

	res, err := h.reservationService.GetReservationsByDate(c.Context(), day)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) UpdateReservationStatus(c *fiber.Ctx) error {
	reservationID := c.Params("id")
	req := new(domain.UpdateReservationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReservation, err)
	}

	if err := h.reservationService.UpdateReservationStatus(c.Context(), reservationID, req.Status); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateReservation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReservation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReservation)
}

func (h *reservationHandler) CancelReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reservationID := c.Params("id")

	if err := h.reservationService.CancelReservation(c.Context(), reservationID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCancelReservation, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelReservation, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelReservation)
}
