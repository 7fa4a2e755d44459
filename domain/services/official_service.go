package services

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
)

type OfficialService interface {
	Create(ctx context.Context, req *dto.OfficialRequest) (*dto.OfficialResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.OfficialRequest) (*dto.OfficialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OfficialResponse, error)
	List(ctx context.Context) ([]dto.OfficialResponse, error)

	// Reorder commits a drag-reorder of the whole list as dense 0..n-1
	// display_order values.
	Reorder(ctx context.Context, orderedIDs []uuid.UUID) error
}
