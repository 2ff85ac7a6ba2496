package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// envelope wraps every API response
type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func sendData(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{OK: true, Data: data})
}

func sendError(c *fiber.Ctx, status int, message string) error {
	c.Status(status)
	return c.JSON(envelope{OK: false, Error: message})
}

// ErrorHandler renders errors that escaped a handler, including unknown routes, in the envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		status = fiberError.Code
	}

	return sendError(c, status, err.Error())
}
