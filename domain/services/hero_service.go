package services

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
)

type HeroService interface {
	Create(ctx context.Context, req *dto.HeroRequest) (*dto.HeroResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.HeroRequest) (*dto.HeroResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HeroResponse, error)
	List(ctx context.Context) ([]dto.HeroResponse, error)

	// SetActive is a partial toggle; all other fields are untouched.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// GetActive returns the active section with the lowest display_order.
	GetActive(ctx context.Context) (*dto.HeroResponse, error)
}
