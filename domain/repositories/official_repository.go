package repositories

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type OfficialRepository interface {
	Create(ctx context.Context, official *models.Official) error
	Update(ctx context.Context, id uuid.UUID, official *models.Official) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Official, error)

	// List returns officials sorted by display_order ascending.
	List(ctx context.Context) ([]models.Official, error)

	// Reorder rewrites display_order to the dense 0..n-1 rank given by
	// orderedIDs in one transaction. Fails when orderedIDs is not exactly
	// the current set of officials.
	Reorder(ctx context.Context, orderedIDs []uuid.UUID) error
}
