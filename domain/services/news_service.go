package services

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
)

// NewsService persists articles and computes their derived fields (slug,
// excerpt, published_at) deterministically.
type NewsService interface {
	Create(ctx context.Context, authorID uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	List(ctx context.Context, status *models.NewsStatus, offset, limit int) ([]dto.NewsResponse, int64, error)

	// Published reads for the public site.
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error)
	ListPublished(ctx context.Context, offset, limit int) ([]dto.NewsResponse, int64, error)
}
