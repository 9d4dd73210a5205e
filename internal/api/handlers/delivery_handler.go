package handlers

import (
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		GetDeliveries(c *fiber.Ctx) error
		GetOrderDeliveries(c *fiber.Ctx) error
		UpdateDeliveryStatus(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

func (h *deliveryHandler) GetDeliveries(c *fiber.Ctx) error {
	status := c.Query("status")

	res, err := h.deliveryService.GetDeliveries(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDeliveries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveries)
}

func (h *deliveryHandler) GetOrderDeliveries(c *fiber.Ctx) error {
	orderID := c.Params("order_id")

	res, err := h.deliveryService.GetDeliveriesByOrder(c.Context(), orderID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDeliveries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveries)
}

func (h *deliveryHandler) UpdateDeliveryStatus(c *fiber.Ctx) error {
	deliveryID := c.Params("id")
	req := new(domain.UpdateDeliveryStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDeliveryStatus, err)
	}

	if err := h.deliveryService.UpdateDeliveryStatus(c.Context(), deliveryID, req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrDeliveryNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDeliveryStatus, err)
		case errors.Is(err, domain.ErrInvalidDeliveryTransition):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDeliveryStatus, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateDeliveryStatus, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDeliveryStatus)
}
