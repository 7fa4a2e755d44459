package handlers

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
)

type DemographicsHandler struct {
	demographicsService services.DemographicsService
}

func NewDemographicsHandler(demographicsService services.DemographicsService) *DemographicsHandler {
	return &DemographicsHandler{demographicsService: demographicsService}
}

// Get returns the village demographics
// @Summary Get village demographics
// @Tags Demographics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/demographics [get]
func (h *DemographicsHandler) Get(c *fiber.Ctx) error {
	demographics, err := h.demographicsService.Get(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Village demographics retrieved", demographics)
}

// Upsert creates or updates the singleton demographics record
// @Summary Save village demographics
// @Tags Demographics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DemographicsRequest true "Village demographics"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/demographics [put]
func (h *DemographicsHandler) Upsert(c *fiber.Ctx) error {
	var req dto.DemographicsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	demographics, err := h.demographicsService.Upsert(c.Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Village demographics saved", demographics)
}
