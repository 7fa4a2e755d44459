package repositories

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type DestinationRepository interface {
	// CreateWithChildren inserts the destination row plus its image and UMKM
	// rows (display_order already assigned from slice position) in one
	// transaction.
	CreateWithChildren(ctx context.Context, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error

	// UpdateWithChildren overwrites the destination row, then replaces the
	// image and UMKM sets (delete-by-parent-id, reinsert with display_order
	// re-derived from slice position) in one transaction.
	UpdateWithChildren(ctx context.Context, id uuid.UUID, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error

	// Delete removes the destination and its dependent rows in one
	// transaction (children first, then the parent).
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.TouristDestination, error)
	List(ctx context.Context, offset, limit int) ([]models.TouristDestination, int64, error)

	// UpdateImageOrder rewrites display_order to the dense 0..n-1 rank given
	// by orderedIDs, preserving row identity, in one transaction. Fails when
	// orderedIDs is not exactly the destination's current image set.
	UpdateImageOrder(ctx context.Context, destinationID uuid.UUID, orderedIDs []uuid.UUID) error

	GetImages(ctx context.Context, destinationID uuid.UUID) ([]models.DestinationImage, error)
}
