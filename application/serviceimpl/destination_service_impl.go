package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/validation"
)

type DestinationServiceImpl struct {
	destRepo repositories.DestinationRepository
}

func NewDestinationService(destRepo repositories.DestinationRepository) services.DestinationService {
	return &DestinationServiceImpl{destRepo: destRepo}
}

func (s *DestinationServiceImpl) Create(ctx context.Context, req *dto.DestinationRequest) (*dto.DestinationResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	dest := &models.TouristDestination{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Facilities:  pq.StringArray(req.Facilities),
		MapsURL:     req.MapsURL,
	}
	images := imagesFromInputs(req.Images)
	umkm := umkmFromInputs(req.UMKM)

	if err := s.destRepo.CreateWithChildren(ctx, dest, images, umkm); err != nil {
		return nil, apperr.NewPersistence("destination.create", err)
	}

	return s.GetByID(ctx, dest.ID)
}

func (s *DestinationServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.DestinationRequest) (*dto.DestinationResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	dest := &models.TouristDestination{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Facilities:  pq.StringArray(req.Facilities),
		MapsURL:     req.MapsURL,
	}
	images := imagesFromInputs(req.Images)
	umkm := umkmFromInputs(req.UMKM)

	if err := s.destRepo.UpdateWithChildren(ctx, id, dest, images, umkm); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("destination")
		}
		return nil, apperr.NewPersistence("destination.update", err)
	}

	return s.GetByID(ctx, id)
}

func (s *DestinationServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.destRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("destination")
		}
		return apperr.NewPersistence("destination.delete", err)
	}
	return nil
}

func (s *DestinationServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.DestinationResponse, error) {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("destination")
		}
		return nil, apperr.NewPersistence("destination.get", err)
	}
	return dto.DestinationToResponse(dest), nil
}

func (s *DestinationServiceImpl) List(ctx context.Context, offset, limit int) ([]dto.DestinationResponse, int64, error) {
	dests, total, err := s.destRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperr.NewPersistence("destination.list", err)
	}
	return dto.DestinationsToResponse(dests), total, nil
}

func (s *DestinationServiceImpl) CommitImageOrder(ctx context.Context, destinationID uuid.UUID, orderedIDs []uuid.UUID) error {
	current, err := s.destRepo.GetImages(ctx, destinationID)
	if err != nil {
		return apperr.NewPersistence("destination.commit_image_order", err)
	}
	if len(current) == 0 {
		return apperr.NewNotFound("destination images")
	}

	// The commit must be a permutation of the current image set. Anything
	// else means the client's local state is stale.
	if len(orderedIDs) != len(current) {
		return apperr.NewValidation("ordered_ids", "must contain every image of the destination exactly once")
	}
	known := make(map[uuid.UUID]bool, len(current))
	for _, img := range current {
		known[img.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] || seen[id] {
			return apperr.NewValidation("ordered_ids", "must contain every image of the destination exactly once")
		}
		seen[id] = true
	}

	if err := s.destRepo.UpdateImageOrder(ctx, destinationID, orderedIDs); err != nil {
		return apperr.NewPersistence("destination.commit_image_order", err)
	}
	return nil
}

func imagesFromInputs(inputs []dto.DestinationImageInput) []models.DestinationImage {
	images := make([]models.DestinationImage, 0, len(inputs))
	for i, in := range inputs {
		images = append(images, models.DestinationImage{
			ImageURL:     in.ImageURL,
			DisplayOrder: i,
		})
	}
	return images
}

func umkmFromInputs(inputs []dto.DestinationUMKMInput) []models.DestinationUMKM {
	umkm := make([]models.DestinationUMKM, 0, len(inputs))
	for i, in := range inputs {
		umkm = append(umkm, models.DestinationUMKM{
			Name:         in.Name,
			MapsURL:      in.MapsURL,
			DisplayOrder: i,
		})
	}
	return umkm
}
