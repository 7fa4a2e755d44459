package repositories

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type HeroRepository interface {
	Create(ctx context.Context, hero *models.HeroSection) error
	Update(ctx context.Context, id uuid.UUID, hero *models.HeroSection) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HeroSection, error)
	List(ctx context.Context) ([]models.HeroSection, error)

	// GetActive returns the active section with the lowest display_order.
	GetActive(ctx context.Context) (*models.HeroSection, error)

	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
