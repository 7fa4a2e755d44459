package handlers

import (
	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores a batch of images; invalid files fail individually
// @Summary Upload images
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "Target bucket"
// @Param files formData file true "Image files"
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/upload/{bucket} [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	folder := c.Query("folder")

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid multipart form", err)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No files provided", nil)
	}

	result, err := h.uploadService.UploadBatch(c.Context(), bucket, folder, files)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	message := "Files uploaded"
	if len(result.Failed) > 0 {
		message = "Some files failed to upload"
	}
	return utils.SuccessResponse(c, message, result)
}

// Delete removes a previously uploaded object by its public URL
// @Summary Delete uploaded image
// @Tags Upload
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/admin/upload [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.URL == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "URL is required", nil)
	}

	if err := h.uploadService.Delete(c.Context(), req.URL); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, "File deleted", nil)
}
