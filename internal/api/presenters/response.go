package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return c.Status(status).JSON(Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}
