package routes

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/interfaces/api/handlers"
	"desa-profil-backend/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	SetupHealthRoutes(app, h.Health)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, cfg)
	SetupPublicRoutes(api, h)
	SetupAdminRoutes(api, h, cfg)
}
