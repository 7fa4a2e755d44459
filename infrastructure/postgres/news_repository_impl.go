package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type NewsRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) repositories.NewsRepository {
	return &NewsRepositoryImpl{db: db}
}

func (r *NewsRepositoryImpl) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *NewsRepositoryImpl) Update(ctx context.Context, id uuid.UUID, news *models.News) error {
	result := r.db.WithContext(ctx).Model(&models.News{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":         news.Title,
		"content":       news.Content,
		"slug":          news.Slug,
		"excerpt":       news.Excerpt,
		"thumbnail_url": news.ThumbnailURL,
		"category":      news.Category,
		"status":        news.Status,
		"published_at":  news.PublishedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.News{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepositoryImpl) GetPublishedBySlug(ctx context.Context, slug string) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ? AND status = ?", slug, models.NewsStatusPublished).
		First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepositoryImpl) List(ctx context.Context, status *models.NewsStatus, offset, limit int) ([]models.News, int64, error) {
	var news []models.News
	var total int64

	query := r.db.WithContext(ctx).Model(&models.News{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&news).Error

	return news, total, err
}

func (r *NewsRepositoryImpl) ListPublished(ctx context.Context, offset, limit int) ([]models.News, int64, error) {
	var news []models.News
	var total int64

	query := r.db.WithContext(ctx).Model(&models.News{}).
		Where("status = ?", models.NewsStatusPublished)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("published_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&news).Error

	return news, total, err
}

func (r *NewsRepositoryImpl) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.News{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
