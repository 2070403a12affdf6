package purchaseRoutes

import (
	purchaseController "simplifygold/controllers/purchase"
	purchaseValidator "simplifygold/validators/purchase"

	"github.com/gofiber/fiber/v2"
)

func SetupPurchaseRoutes(app *fiber.App) {
	purchaseGroup := app.Group("/api/purchase")

	purchaseGroup.Post("/", purchaseValidator.Purchase(), purchaseController.HandlePurchase)
	purchaseGroup.Get("/:userId", purchaseController.GetPurchaseHistory)
}
