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

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) services.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Get(ctx context.Context) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("village profile")
		}
		return nil, apperr.NewPersistence("profile.get", err)
	}
	return dto.ProfileToResponse(profile), nil
}

func (s *ProfileServiceImpl) Upsert(ctx context.Context, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	profile := req.ToModel()
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperr.NewPersistence("profile.upsert", err)
	}

	saved, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, apperr.NewPersistence("profile.upsert", err)
	}
	return dto.ProfileToResponse(saved), nil
}
