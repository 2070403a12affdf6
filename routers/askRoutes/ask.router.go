package askRoutes

import (
	askController "simplifygold/controllers/ask"
	askValidator "simplifygold/validators/ask"

	"github.com/gofiber/fiber/v2"
)

func SetupAskRoutes(app *fiber.App) {
	askGroup := app.Group("/api/ask")

	askGroup.Post("/", askValidator.Ask(), askController.HandleAskQuery)
}
