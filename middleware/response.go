package middleware

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts uncaught errors into a generic 500 payload
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.OriginalURL(), err)

	return c.Status(code).JSON(fiber.Map{
		"error":   "Something went wrong!",
		"message": err.Error(),
	})
}

// NotFoundHandler answers every unmatched route
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Route not found",
		"message": fmt.Sprintf("Cannot %s %s", c.Method(), c.OriginalURL()),
	})
}
