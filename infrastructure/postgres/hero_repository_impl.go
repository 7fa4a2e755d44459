package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type HeroRepositoryImpl struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) repositories.HeroRepository {
	return &HeroRepositoryImpl{db: db}
}

func (r *HeroRepositoryImpl) Create(ctx context.Context, hero *models.HeroSection) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *HeroRepositoryImpl) Update(ctx context.Context, id uuid.UUID, hero *models.HeroSection) error {
	result := r.db.WithContext(ctx).Model(&models.HeroSection{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":         hero.Title,
		"subtitle":      hero.Subtitle,
		"cta_text":      hero.CTAText,
		"cta_link":      hero.CTALink,
		"image_url":     hero.ImageURL,
		"is_active":     hero.IsActive,
		"display_order": hero.DisplayOrder,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HeroRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroSection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HeroRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.HeroSection, error) {
	var hero models.HeroSection
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hero).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *HeroRepositoryImpl) List(ctx context.Context) ([]models.HeroSection, error) {
	var heroes []models.HeroSection
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&heroes).Error
	return heroes, err
}

func (r *HeroRepositoryImpl) GetActive(ctx context.Context) (*models.HeroSection, error) {
	var hero models.HeroSection
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		First(&hero).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *HeroRepositoryImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.HeroSection{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
