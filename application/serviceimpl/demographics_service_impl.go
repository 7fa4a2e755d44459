package serviceimpl

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/validation"
)

type DemographicsServiceImpl struct {
	demoRepo repositories.DemographicsRepository
}

func NewDemographicsService(demoRepo repositories.DemographicsRepository) services.DemographicsService {
	return &DemographicsServiceImpl{demoRepo: demoRepo}
}

func (s *DemographicsServiceImpl) Get(ctx context.Context) (*dto.DemographicsResponse, error) {
	demographics, err := s.demoRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("village demographics")
		}
		return nil, apperr.NewPersistence("demographics.get", err)
	}
	return dto.DemographicsToResponse(demographics), nil
}

func (s *DemographicsServiceImpl) Upsert(ctx context.Context, req *dto.DemographicsRequest) (*dto.DemographicsResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	demographics := req.ToModel()
	if err := s.demoRepo.Upsert(ctx, demographics); err != nil {
		return nil, apperr.NewPersistence("demographics.upsert", err)
	}

	saved, err := s.demoRepo.Get(ctx)
	if err != nil {
		return nil, apperr.NewPersistence("demographics.upsert", err)
	}
	return dto.DemographicsToResponse(saved), nil
}
