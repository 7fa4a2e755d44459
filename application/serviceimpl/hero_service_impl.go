package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/validation"
)

type HeroServiceImpl struct {
	heroRepo repositories.HeroRepository
}

func NewHeroService(heroRepo repositories.HeroRepository) services.HeroService {
	return &HeroServiceImpl{heroRepo: heroRepo}
}

func (s *HeroServiceImpl) Create(ctx context.Context, req *dto.HeroRequest) (*dto.HeroResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	hero := &models.HeroSection{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		CTAText:      req.CTAText,
		CTALink:      req.CTALink,
		ImageURL:     req.ImageURL,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, apperr.NewPersistence("hero.create", err)
	}
	return dto.HeroToResponse(hero), nil
}

func (s *HeroServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.HeroRequest) (*dto.HeroResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	hero := &models.HeroSection{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		CTAText:      req.CTAText,
		CTALink:      req.CTALink,
		ImageURL:     req.ImageURL,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.heroRepo.Update(ctx, id, hero); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("hero section")
		}
		return nil, apperr.NewPersistence("hero.update", err)
	}
	return s.GetByID(ctx, id)
}

func (s *HeroServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.heroRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("hero section")
		}
		return apperr.NewPersistence("hero.delete", err)
	}
	return nil
}

func (s *HeroServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("hero section")
		}
		return nil, apperr.NewPersistence("hero.get", err)
	}
	return dto.HeroToResponse(hero), nil
}

func (s *HeroServiceImpl) List(ctx context.Context) ([]dto.HeroResponse, error) {
	heroes, err := s.heroRepo.List(ctx)
	if err != nil {
		return nil, apperr.NewPersistence("hero.list", err)
	}
	return dto.HeroesToResponse(heroes), nil
}

func (s *HeroServiceImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.heroRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("hero section")
		}
		return apperr.NewPersistence("hero.set_active", err)
	}
	return nil
}

func (s *HeroServiceImpl) GetActive(ctx context.Context) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("active hero section")
		}
		return nil, apperr.NewPersistence("hero.get_active", err)
	}
	return dto.HeroToResponse(hero), nil
}
