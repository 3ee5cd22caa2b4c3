package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes payload with the provided HTTP status code.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(payload)
}

// SendError writes an {"error": message} body with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
