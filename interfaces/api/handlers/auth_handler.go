package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"desa-profil-backend/application/serviceimpl"
	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an admin and returns a JWT
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		if apperr.IsValidation(err) {
			return utils.AppErrorResponse(c, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	return utils.SuccessResponse(c, "Login successful", result)
}

// Me returns the authenticated admin's profile
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	user, err := h.authService.GetCurrentUser(c.Context(), userCtx.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, "User retrieved", user)
}
