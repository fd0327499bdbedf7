// Package presenter formats every HTTP response body of the API.
package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — тело любого ответа с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

// StatusResponse — тело ответов проб /health и /ready.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Status(c *fiber.Ctx, code int, status, details string) error {
	return JSON(c, code, StatusResponse{Status: status, Details: details})
}
