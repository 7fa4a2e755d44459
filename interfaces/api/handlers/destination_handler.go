package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
	"desa-profil-backend/pkg/validation"
)

type DestinationHandler struct {
	destinationService services.DestinationService
}

func NewDestinationHandler(destinationService services.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// List returns destinations with their ordered galleries
// @Summary List tourist destinations
// @Tags Destinations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	params := utils.ParsePagination(c, 10, 50)

	destinations, total, err := h.destinationService.List(c.Context(), params.Offset(), params.Limit())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.PaginatedResponse(c, "Destinations retrieved", destinations, utils.BuildPageMeta(total, params))
}

// Get returns one destination with images and UMKM in display order
// @Summary Get tourist destination
// @Tags Destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/destinations/{id} [get]
func (h *DestinationHandler) Get(c *fiber.Ctx) error {
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

// Create persists a destination with its gallery and UMKM in one transaction
// @Summary Create tourist destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DestinationRequest true "Destination"
// @Success 201 {object} utils.Response
// @Router /api/v1/admin/destinations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var req dto.DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	destination, err := h.destinationService.Create(c.Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, "Destination created", destination)
}

// Update replaces a destination and both child collections
// @Summary Update tourist destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body dto.DestinationRequest true "Destination"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/destinations/{id} [put]
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid destination ID", err)
	}

	var req dto.DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	destination, err := h.destinationService.Update(c.Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Destination updated", destination)
}

// ReorderImages commits a drag-reorder of the gallery
// @Summary Reorder destination images
// @Tags Destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body dto.ReorderImagesRequest true "Full image id set in new order"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/destinations/{id}/images/reorder [put]
func (h *DestinationHandler) ReorderImages(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid destination ID", err)
	}

	var req dto.ReorderImagesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.destinationService.CommitImageOrder(c.Context(), id, req.OrderedIDs); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	// Return the authoritative state so a failed optimistic reorder on the
	// client can be reverted from this payload.
	destination, err := h.destinationService.GetByID(c.Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Images reordered", destination)
}

// Delete removes a destination and its children
// @Summary Delete tourist destination
// @Tags Destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid destination ID", err)
	}

	if err := h.destinationService.Delete(c.Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "Destination deleted", nil)
}
