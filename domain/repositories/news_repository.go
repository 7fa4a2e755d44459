package repositories

import (
	"context"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, id uuid.UUID, news *models.News) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.News, error)

	// GetPublishedBySlug only matches published rows; draft articles are not
	// reachable by slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*models.News, error)

	// List returns articles newest first, optionally filtered by status.
	List(ctx context.Context, status *models.NewsStatus, offset, limit int) ([]models.News, int64, error)

	// ListPublished returns published articles ordered by published_at
	// descending.
	ListPublished(ctx context.Context, offset, limit int) ([]models.News, int64, error)

	// SlugExists reports whether another row (excluding excludeID when
	// non-nil) already uses the slug.
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
