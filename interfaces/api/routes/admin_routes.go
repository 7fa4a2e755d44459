package routes

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/interfaces/api/handlers"
	"desa-profil-backend/interfaces/api/middleware"
	"desa-profil-backend/pkg/config"
)

// SetupAdminRoutes registers the CMS endpoints. Everything here requires a
// valid admin JWT.
func SetupAdminRoutes(router fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	admin := router.Group("/admin")
	admin.Use(middleware.Protected(cfg.JWT.Secret))
	admin.Use(middleware.AdminOnly())

	hero := admin.Group("/hero")
	hero.Get("/", h.Hero.List)
	hero.Post("/", h.Hero.Create)
	hero.Get("/:id", h.Hero.Get)
	hero.Put("/:id", h.Hero.Update)
	hero.Patch("/:id/active", h.Hero.SetActive)
	hero.Delete("/:id", h.Hero.Delete)

	officials := admin.Group("/officials")
	officials.Get("/", h.Official.List)
	officials.Post("/", h.Official.Create)
	officials.Put("/reorder", h.Official.Reorder)
	officials.Get("/:id", h.Official.Get)
	officials.Put("/:id", h.Official.Update)
	officials.Delete("/:id", h.Official.Delete)

	admin.Get("/profile", h.Profile.Get)
	admin.Put("/profile", h.Profile.Upsert)

	admin.Get("/demographics", h.Demographics.Get)
	admin.Put("/demographics", h.Demographics.Upsert)

	destinations := admin.Group("/destinations")
	destinations.Get("/", h.Destination.List)
	destinations.Post("/", h.Destination.Create)
	destinations.Get("/:id", h.Destination.Get)
	destinations.Put("/:id", h.Destination.Update)
	destinations.Put("/:id/images/reorder", h.Destination.ReorderImages)
	destinations.Delete("/:id", h.Destination.Delete)

	news := admin.Group("/news")
	news.Get("/", h.News.List)
	news.Post("/", h.News.Create)
	news.Get("/:id", h.News.Get)
	news.Put("/:id", h.News.Update)
	news.Delete("/:id", h.News.Delete)

	admin.Post("/upload/:bucket", h.Upload.Upload)
	admin.Delete("/upload", h.Upload.Delete)
}
