package handlers

import (
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/internal/api/presenters"
	"github.com/vini-501/FoodBase/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItemDetails(c *fiber.Ctx) error
		GetMenuItemsByCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		UploadMenuImage(c *fiber.Ctx) error
		ReseedMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	res, err := h.menuService.GetMenuItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetMenuItemsByCategory(c *fiber.Ctx) error {
	category := c.Params("name")

	res, err := h.menuService.GetMenuItemsByCategory(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetMenuItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.menuService.GetMenuItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.menuService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *menuHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRequiredFields) || errors.Is(err, domain.ErrInvalidPrice) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMenuItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateMenuItem)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	if err := h.menuService.UpdateMenuItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.menuService.DeleteMenuItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrMenuItemIDRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
		}
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMenuItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) UploadMenuImage(c *fiber.Ctx) error {
	req := new(domain.UploadMenuImageRequest)
	req.MenuItemID = c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMenuImage, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMenuImage, err)
	}

	url, err := h.menuService.UploadMenuImage(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadMenuImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadMenuImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadMenuImage)
}

func (h *menuHandler) ReseedMenu(c *fiber.Ctx) error {
	res, err := h.menuService.ReseedMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReseedMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReseedMenu)
}
