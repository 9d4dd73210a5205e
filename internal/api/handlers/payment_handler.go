package handlers

import (
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreateTransaction(c *fiber.Ctx) error
		MidtransNotification(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreateTransaction(c *fiber.Ctx) error {
	req := domain.CreatePaymentRequest{OrderID: c.Params("id")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := h.paymentService.CreateTransaction(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreatePayment, err)
		case errors.Is(err, domain.ErrOrderAlreadyPaid):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePayment, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *paymentHandler) MidtransNotification(c *fiber.Ctx) error {
	req := new(domain.MidtransNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
