package routes

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/interfaces/api/handlers"
	"desa-profil-backend/interfaces/api/middleware"
	"desa-profil-backend/pkg/config"
)

func SetupAuthRoutes(router fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	auth := router.Group("/auth")

	// Login gets the stricter limiter.
	auth.Post("/login", middleware.AuthRateLimiter(&cfg.RateLimit), h.Auth.Login)
	auth.Get("/me", middleware.Protected(cfg.JWT.Secret), h.Auth.Me)
}
