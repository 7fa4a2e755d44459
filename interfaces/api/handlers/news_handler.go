package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// List returns articles newest first, optionally filtered by status
// @Summary List news articles
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (draft or published)"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	params := utils.ParsePagination(c, 10, 50)

	var status *models.NewsStatus
	if q := c.Query("status"); q != "" {
		s := models.NewsStatus(q)
		if s != models.NewsStatusDraft && s != models.NewsStatusPublished {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status filter", nil)
		}
		status = &s
	}

	items, total, err := h.newsService.List(c.Context(), status, params.Offset(), params.Limit())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.PaginatedResponse(c, "News articles retrieved", items, utils.BuildPageMeta(total, params))
}

// Get returns one article including its content
// @Summary Get news article
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/news/{id} [get]
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid article ID", err)
	}

	article, err := h.newsService.GetByID(c.Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Article retrieved", article)
}

// Create persists an article; slug and excerpt are derived server-side
// @Summary Create news article
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewsRequest true "Article"
// @Success 201 {object} utils.Response
// @Router /api/v1/admin/news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	article, err := h.newsService.Create(c.Context(), userCtx.ID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, "Article created", article)
}

// Update re-derives slug and excerpt; published_at is preserved once set
// @Summary Update news article
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body dto.NewsRequest true "Article"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/news/{id} [put]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid article ID", err)
	}

	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	article, err := h.newsService.Update(c.Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Article updated", article)
}

// Delete removes an article
// @Summary Delete news article
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid article ID", err)
	}

	if err := h.newsService.Delete(c.Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Article deleted", nil)
}
