package services

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)

	// SeedAdmin creates the configured admin account when the users table is
	// empty. No-op otherwise.
	SeedAdmin(ctx context.Context) error
}
