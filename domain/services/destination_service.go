package services

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
)

// DestinationService persists a destination together with its ordered image
// and UMKM collections as one logical unit.
type DestinationService interface {
	Create(ctx context.Context, req *dto.DestinationRequest) (*dto.DestinationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.DestinationRequest) (*dto.DestinationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DestinationResponse, error)
	List(ctx context.Context, offset, limit int) ([]dto.DestinationResponse, int64, error)

	// CommitImageOrder persists a drag-reorder as dense 0..n-1 ranks. On
	// failure the caller must refetch the authoritative order instead of
	// trusting its optimistic local array.
	CommitImageOrder(ctx context.Context, destinationID uuid.UUID, orderedIDs []uuid.UUID) error
}
