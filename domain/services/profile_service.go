package services

import (
	"context"

	"desa-profil-backend/domain/dto"
)

// ProfileService manages the singleton village profile.
type ProfileService interface {
	Get(ctx context.Context) (*dto.ProfileResponse, error)
	Upsert(ctx context.Context, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
}
