package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
	"desa-profil-backend/pkg/validation"
)

type HeroHandler struct {
	heroService services.HeroService
}

func NewHeroHandler(heroService services.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

// List returns all hero sections
// @Summary List hero sections
// @Tags Hero
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/hero [get]
func (h *HeroHandler) List(c *fiber.Ctx) error {
	heroes, err := h.heroService.List(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Hero sections retrieved", heroes)
}

// Get returns one hero section
// @Summary Get hero section
// @Tags Hero
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/hero/{id} [get]
func (h *HeroHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero section ID", err)
	}

	hero, err := h.heroService.GetByID(c.Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Hero section retrieved", hero)
}

// Create adds a hero section
// @Summary Create hero section
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.HeroRequest true "Hero section"
// @Success 201 {object} utils.Response
// @Router /api/v1/admin/hero [post]
func (h *HeroHandler) Create(c *fiber.Ctx) error {
	var req dto.HeroRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	hero, err := h.heroService.Create(c.Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, "Hero section created", hero)
}

// Update replaces a hero section's fields
// @Summary Update hero section
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Param request body dto.HeroRequest true "Hero section"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/hero/{id} [put]
func (h *HeroHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero section ID", err)
	}

	var req dto.HeroRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	hero, err := h.heroService.Update(c.Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Hero section updated", hero)
}

// SetActive toggles a hero section without touching other fields
// @Summary Toggle hero section active state
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Param request body dto.HeroSetActiveRequest true "Active flag"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/hero/{id}/active [patch]
func (h *HeroHandler) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero section ID", err)
	}

	var req dto.HeroSetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.heroService.SetActive(c.Context(), id, *req.IsActive); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Hero section updated", nil)
}

// Delete removes a hero section
// @Summary Delete hero section
// @Tags Hero
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero section ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/hero/{id} [delete]
func (h *HeroHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero section ID", err)
	}

	if err := h.heroService.Delete(c.Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Hero section deleted", nil)
}
