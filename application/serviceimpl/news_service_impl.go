package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/utils"
	"desa-profil-backend/pkg/validation"
)

const excerptMaxLen = 200

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) services.NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

func (s *NewsServiceImpl) Create(ctx context.Context, authorID uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Title, nil)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		AuthorID:     &authorID,
		Title:        req.Title,
		Content:      req.Content,
		Slug:         slug,
		Excerpt:      utils.Excerpt(req.Content, excerptMaxLen),
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Status:       models.NewsStatus(req.Status),
	}
	if news.Status == models.NewsStatusPublished {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, apperr.NewPersistence("news.create", err)
	}

	return s.GetByID(ctx, news.ID)
}

func (s *NewsServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("news article")
		}
		return nil, apperr.NewPersistence("news.update", err)
	}

	slug := existing.Slug
	if req.Title != existing.Title {
		slug, err = s.uniqueSlug(ctx, req.Title, &id)
		if err != nil {
			return nil, err
		}
	}

	news := &models.News{
		Title:        req.Title,
		Content:      req.Content,
		Slug:         slug,
		Excerpt:      utils.Excerpt(req.Content, excerptMaxLen),
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Status:       models.NewsStatus(req.Status),
	}
	// A draft never carries a publish time. Publishing keeps the existing
	// timestamp; re-saving a published article never bumps it.
	if news.Status == models.NewsStatusPublished {
		news.PublishedAt = existing.PublishedAt
		if news.PublishedAt == nil {
			now := time.Now()
			news.PublishedAt = &now
		}
	}

	if err := s.newsRepo.Update(ctx, id, news); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("news article")
		}
		return nil, apperr.NewPersistence("news.update", err)
	}

	return s.GetByID(ctx, id)
}

func (s *NewsServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("news article")
		}
		return apperr.NewPersistence("news.delete", err)
	}
	return nil
}

func (s *NewsServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("news article")
		}
		return nil, apperr.NewPersistence("news.get", err)
	}
	return dto.NewsToResponse(news), nil
}

func (s *NewsServiceImpl) List(ctx context.Context, status *models.NewsStatus, offset, limit int) ([]dto.NewsResponse, int64, error) {
	items, total, err := s.newsRepo.List(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, apperr.NewPersistence("news.list", err)
	}
	return dto.NewsToListResponse(items), total, nil
}

func (s *NewsServiceImpl) GetPublishedBySlug(ctx context.Context, slug string) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("news article")
		}
		return nil, apperr.NewPersistence("news.get_by_slug", err)
	}
	return dto.NewsToResponse(news), nil
}

func (s *NewsServiceImpl) ListPublished(ctx context.Context, offset, limit int) ([]dto.NewsResponse, int64, error) {
	items, total, err := s.newsRepo.ListPublished(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperr.NewPersistence("news.list_published", err)
	}
	return dto.NewsToListResponse(items), total, nil
}

// uniqueSlug derives the slug from the title and probes numeric suffixes
// (-2, -3, ...) until no other article uses it.
func (s *NewsServiceImpl) uniqueSlug(ctx context.Context, title string, excludeID *uuid.UUID) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", apperr.NewValidation("title", "cannot be reduced to a valid slug")
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.newsRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", apperr.NewPersistence("news.slug_check", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
