package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
)

// Public news listings always use this page size.
const publicNewsPageSize = 9

// PublicHandler serves the unauthenticated site endpoints. Only published
// content is ever reachable here.
type PublicHandler struct {
	homeService        services.HomeService
	newsService        services.NewsService
	destinationService services.DestinationService
}

func NewPublicHandler(homeService services.HomeService, newsService services.NewsService, destinationService services.DestinationService) *PublicHandler {
	return &PublicHandler{
		homeService:        homeService,
		newsService:        newsService,
		destinationService: destinationService,
	}
}

// Home returns the cached home page aggregate
// @Summary Public home aggregate
// @Tags Public
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/v1/public/home [get]
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	home, err := h.homeService.GetHome(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Home retrieved", home)
}

// ListNews returns published articles, 9 per page
// @Summary Public news list
// @Tags Public
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} utils.Response
// @Router /api/v1/public/news [get]
func (h *PublicHandler) ListNews(c *fiber.Ctx) error {
	params := utils.FixedPagination(c, publicNewsPageSize)

	items, total, err := h.newsService.ListPublished(c.Context(), params.Offset(), params.Limit())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.PaginatedResponse(c, "News retrieved", items, utils.BuildPageMeta(total, params))
}

// GetNewsBySlug returns one published article; drafts are 404
// @Summary Public article by slug
// @Tags Public
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/v1/public/news/{slug} [get]
func (h *PublicHandler) GetNewsBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Slug is required", nil)
	}

	article, err := h.newsService.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Article retrieved", article)
}

// ListDestinations returns destinations with ordered galleries
// @Summary Public destination list
// @Tags Public
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} utils.Response
// @Router /api/v1/public/destinations [get]
func (h *PublicHandler) ListDestinations(c *fiber.Ctx) error {
	params := utils.ParsePagination(c, 12, 50)

	destinations, total, err := h.destinationService.List(c.Context(), params.Offset(), params.Limit())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.PaginatedResponse(c, "Destinations retrieved", destinations, utils.BuildPageMeta(total, params))
}

// GetDestination returns one destination
// @Summary Public destination detail
// @Tags Public
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/public/destinations/{id} [get]
func (h *PublicHandler) GetDestination(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid destination ID", err)
	}

	destination, err := h.destinationService.GetByID(c.Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Destination retrieved", destination)
}
