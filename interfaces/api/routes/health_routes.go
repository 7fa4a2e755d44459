package routes

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, healthHandler *handlers.HealthHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Server is running",
			"service": "Desa Profil API",
		})
	})

	if healthHandler != nil {
		app.Get("/health/detailed", healthHandler.DetailedHealth)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Desa Profil API",
			"version": "1.0.0",
			"docs":    "/swagger",
			"health":  "/health",
		})
	})
}
