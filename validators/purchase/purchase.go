package purchaseValidator

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// PurchaseRequest is the body of POST /api/purchase
type PurchaseRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gte=1"`
}

// Purchase validates the purchase request body. Missing fields are
// reported before the minimum-amount check.
func Purchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchaseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Both userId and amount are required",
			})
		}

		if err := validate.Struct(reqData); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				for _, fieldErr := range validationErrors {
					if fieldErr.Tag() == "required" {
						return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
							"error": "Both userId and amount are required",
						})
					}
				}
				for _, fieldErr := range validationErrors {
					if fieldErr.Field() == "Amount" && fieldErr.Tag() == "gte" {
						return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
							"error": "Minimum investment amount is ₹1",
						})
					}
				}
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Both userId and amount are required",
			})
		}

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}
