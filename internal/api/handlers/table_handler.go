package handlers

import (
	"errors"
	"strconv"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/tableservice"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TableHandler interface {
		GetTables(c *fiber.Ctx) error
		ReserveTable(c *fiber.Ctx) error
		OccupyTable(c *fiber.Ctx) error
		ReleaseTable(c *fiber.Ctx) error
	}

	tableHandler struct {
		tableService tableservice.TableService
		validator    *validator.Validate
	}
)

func NewTableHandler(tableService tableservice.TableService, validator *validator.Validate) TableHandler {
	return &tableHandler{
		tableService: tableService,
		validator:    validator,
	}
}

func (h *tableHandler) GetTables(c *fiber.Ctx) error {
	res, err := h.tableService.GetTables(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTables, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTables)
}

func (h *tableHandler) ReserveTable(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReserveTable, err)
	}

	req := new(domain.TableActionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReserveTable, err)
	}

	if err := h.tableService.ReserveTable(c.Context(), number, req.CustomerName); err != nil {
		return tableErrorResponse(c, domain.MessageFailedReserveTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReserveTable)
}

func (h *tableHandler) OccupyTable(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOccupyTable, err)
	}

	req := new(domain.TableActionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOccupyTable, err)
	}

	if err := h.tableService.OccupyTable(c.Context(), number, req.CustomerName); err != nil {
		return tableErrorResponse(c, domain.MessageFailedOccupyTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessOccupyTable)
}

func (h *tableHandler) ReleaseTable(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReleaseTable, err)
	}

	if err := h.tableService.ReleaseTable(c.Context(), number); err != nil {
		return tableErrorResponse(c, domain.MessageFailedReleaseTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReleaseTable)
}

func tableErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrTableNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrTableNotAvailable), errors.Is(err, domain.ErrCustomerNameMissing):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}
