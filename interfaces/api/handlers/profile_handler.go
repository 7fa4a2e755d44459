package handlers

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the village profile
// @Summary Get village profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileService.Get(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Village profile retrieved", profile)
}

// Upsert creates or updates the singleton village profile
// @Summary Save village profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileRequest true "Village profile"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/profile [put]
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	profile, err := h.profileService.Upsert(c.Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Village profile saved", profile)
}
