package handlers

import (
	"time"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/accounting"

	"github.com/gofiber/fiber/v2"
)

type (
	AccountingHandler interface {
		GetFinancialSummary(c *fiber.Ctx) error
	}

	accountingHandler struct {
		accountingService accounting.AccountingService
	}
)

func NewAccountingHandler(accountingService accounting.AccountingService) AccountingHandler {
	return &accountingHandler{accountingService: accountingService}
}

func (h *accountingHandler) GetFinancialSummary(c *fiber.Ctx) error {
	// defaults to the trailing 30 days when no range is given
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
		}
		start = parsed
	}
	if v := c.Query("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
		}
		end = parsed.AddDate(0, 0, 1)
	}

	res, err := h.accountingService.GetFinancialSummary(c.Context(), start, end)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
