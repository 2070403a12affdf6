package askValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AskRequest is the body of POST /api/ask
type AskRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// Ask validates the ask request body
func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AskRequest)

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Both userId and question are required",
			})
		}

		if err := validate.Struct(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Both userId and question are required",
			})
		}

		c.Locals("validatedAsk", reqData)
		return c.Next()
	}
}
