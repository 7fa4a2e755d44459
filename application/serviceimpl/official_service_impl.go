package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/logger"
	"desa-profil-backend/pkg/validation"
)

type OfficialServiceImpl struct {
	officialRepo repositories.OfficialRepository
}

func NewOfficialService(officialRepo repositories.OfficialRepository) services.OfficialService {
	return &OfficialServiceImpl{officialRepo: officialRepo}
}

func (s *OfficialServiceImpl) Create(ctx context.Context, req *dto.OfficialRequest) (*dto.OfficialResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	official := req.ToModel()

	// New officials go to the end of the list.
	existing, err := s.officialRepo.List(ctx)
	if err != nil {
		return nil, apperr.NewPersistence("official.create", err)
	}
	official.DisplayOrder = len(existing)

	if err := s.officialRepo.Create(ctx, official); err != nil {
		return nil, apperr.NewPersistence("official.create", err)
	}
	return dto.OfficialToResponse(official), nil
}

func (s *OfficialServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.OfficialRequest) (*dto.OfficialResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := s.officialRepo.Update(ctx, id, req.ToModel()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("official")
		}
		return nil, apperr.NewPersistence("official.update", err)
	}
	return s.GetByID(ctx, id)
}

func (s *OfficialServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.officialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("official")
		}
		return apperr.NewPersistence("official.delete", err)
	}

	// Densify display_order after a removal so the ranks stay 0..n-1. The
	// delete already committed, so a densify failure is logged, not returned.
	remaining, err := s.officialRepo.List(ctx)
	if err != nil {
		logger.Error(logger.CategoryDB, "official_densify", "Could not list officials after delete", err, map[string]interface{}{"deleted_id": id.String()})
		return nil
	}
	ids := make([]uuid.UUID, 0, len(remaining))
	for _, o := range remaining {
		ids = append(ids, o.ID)
	}
	if len(ids) > 0 {
		if err := s.officialRepo.Reorder(ctx, ids); err != nil {
			logger.Error(logger.CategoryDB, "official_densify", "Could not densify official order after delete", err, map[string]interface{}{"deleted_id": id.String()})
		}
	}
	return nil
}

func (s *OfficialServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.OfficialResponse, error) {
	official, err := s.officialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("official")
		}
		return nil, apperr.NewPersistence("official.get", err)
	}
	return dto.OfficialToResponse(official), nil
}

func (s *OfficialServiceImpl) List(ctx context.Context) ([]dto.OfficialResponse, error) {
	officials, err := s.officialRepo.List(ctx)
	if err != nil {
		return nil, apperr.NewPersistence("official.list", err)
	}
	return dto.OfficialsToResponse(officials), nil
}

func (s *OfficialServiceImpl) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	current, err := s.officialRepo.List(ctx)
	if err != nil {
		return apperr.NewPersistence("official.reorder", err)
	}

	if len(orderedIDs) != len(current) {
		return apperr.NewValidation("ordered_ids", "must contain every official exactly once")
	}
	known := make(map[uuid.UUID]bool, len(current))
	for _, o := range current {
		known[o.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] || seen[id] {
			return apperr.NewValidation("ordered_ids", "must contain every official exactly once")
		}
		seen[id] = true
	}

	if err := s.officialRepo.Reorder(ctx, orderedIDs); err != nil {
		return apperr.NewPersistence("official.reorder", err)
	}
	return nil
}
