package handlers

import (
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetOrderDetails(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	res, err := h.orderService.PlaceOrder(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			// distinct status so the client redirects back to login
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedPlaceOrder, err)
		case errors.Is(err, domain.ErrEmptyOrder),
			errors.Is(err, domain.ErrMissingUserID),
			errors.Is(err, domain.ErrMissingDeliveryAddress),
			errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, domain.ErrNoValidItems):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPlaceOrder, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func (h *orderHandler) GetOrderDetails(c *fiber.Ctx) error {
	orderID := c.Params("id")

	res, err := h.orderService.GetOrderByID(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	if err := h.orderService.UpdateOrderStatus(c.Context(), orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateOrderStatus, err)
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateOrderStatus, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}
