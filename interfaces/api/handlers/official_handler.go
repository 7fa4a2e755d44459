package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
	"desa-profil-backend/pkg/validation"
)

type OfficialHandler struct {
	officialService services.OfficialService
}

func NewOfficialHandler(officialService services.OfficialService) *OfficialHandler {
	return &OfficialHandler{officialService: officialService}
}

// List returns the government structure in display order
// @Summary List officials
// @Tags Officials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/officials [get]
func (h *OfficialHandler) List(c *fiber.Ctx) error {
	officials, err := h.officialService.List(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Officials retrieved", officials)
}

// Get returns one official
// @Summary Get official
// @Tags Officials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Official ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/officials/{id} [get]
func (h *OfficialHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid official ID", err)
	}

	official, err := h.officialService.GetByID(c.Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Official retrieved", official)
}

// Create adds an official at the end of the list
// @Summary Create official
// @Tags Officials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OfficialRequest true "Official"
// @Success 201 {object} utils.Response
// @Router /api/v1/admin/officials [post]
func (h *OfficialHandler) Create(c *fiber.Ctx) error {
	var req dto.OfficialRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	official, err := h.officialService.Create(c.Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, "Official created", official)
}

// Update replaces an official's fields, keeping display order
// @Summary Update official
// @Tags Officials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Official ID"
// @Param request body dto.OfficialRequest true "Official"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/officials/{id} [put]
func (h *OfficialHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid official ID", err)
	}

	var req dto.OfficialRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	official, err := h.officialService.Update(c.Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Official updated", official)
}

// Reorder commits a drag-reorder of the whole list
// @Summary Reorder officials
// @Tags Officials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OfficialReorderRequest true "Full id set in new order"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/officials/reorder [put]
func (h *OfficialHandler) Reorder(c *fiber.Ctx) error {
	var req dto.OfficialReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.officialService.Reorder(c.Context(), req.OrderedIDs); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	// Hand back the authoritative order so the client can reconcile.
	officials, err := h.officialService.List(c.Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Officials reordered", officials)
}

// Delete removes an official and densifies the remaining order
// @Summary Delete official
// @Tags Officials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Official ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/officials/{id} [delete]
func (h *OfficialHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid official ID", err)
	}

	if err := h.officialService.Delete(c.Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Official deleted", nil)
}
