package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/pkg/apperr"
)

// Response is the standard API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func PaginatedResponse(c *fiber.Ctx, message string, data interface{}, meta interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(status).JSON(resp)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(Response{
		Success: false,
		Message: message,
	})
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{
		Success: false,
		Message: message,
	})
}

// AppErrorResponse maps the service error taxonomy onto HTTP statuses.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Message: ve.Message,
			Field:   ve.Field,
			Error:   ve.Error(),
		})
	}

	var ue *apperr.UploadError
	if errors.As(err, &ue) {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Message: ue.Reason,
			Field:   ue.FileName,
			Error:   ue.Error(),
		})
	}

	var ne *apperr.NotFoundError
	if errors.As(err, &ne) {
		return NotFoundResponse(c, ne.Error())
	}

	var pe *apperr.PersistenceError
	if errors.As(err, &pe) {
		return ErrorResponse(c, fiber.StatusInternalServerError, "Storage operation failed", pe)
	}

	return ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred", err)
}
