package routes

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/interfaces/api/handlers"
)

// SetupPublicRoutes registers the unauthenticated site endpoints. Only
// published content is reachable here.
func SetupPublicRoutes(router fiber.Router, h *handlers.Handlers) {
	public := router.Group("/public")

	public.Get("/home", h.Public.Home)
	public.Get("/news", h.Public.ListNews)
	public.Get("/news/:slug", h.Public.GetNewsBySlug)
	public.Get("/destinations", h.Public.ListDestinations)
	public.Get("/destinations/:id", h.Public.GetDestination)
}
