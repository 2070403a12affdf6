package main

import (
	"log"
	"time"

	"simplifygold/config"
	"simplifygold/database"
	"simplifygold/middleware"
	askRoutes "simplifygold/routers/askRoutes"
	purchaseRoutes "simplifygold/routers/purchaseRoutes"
	"simplifygold/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitGemini()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	askRoutes.SetupAskRoutes(app)
	purchaseRoutes.SetupPurchaseRoutes(app)

	app.Get("/api/health", healthCheck)
	app.Get("/", rootIndex)

	// Everything unmatched falls through to the 404 handler
	app.Use(middleware.NotFoundHandler)

	utils.StartReconcileScheduler()

	log.Printf("Simplify Money API running on port %s", config.AppConfig.Port)
	log.Printf("Health check: http://localhost:%s/api/health", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Simplify Money API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func rootIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Simplify Money - AI-powered Gold Investment API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"ask":             "POST /api/ask",
			"purchase":        "POST /api/purchase",
			"purchaseHistory": "GET /api/purchase/:userId",
			"health":          "GET /api/health",
		},
	})
}
