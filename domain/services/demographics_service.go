package services

import (
	"context"

	"desa-profil-backend/domain/dto"
)

// DemographicsService manages the singleton demographics record.
type DemographicsService interface {
	Get(ctx context.Context) (*dto.DemographicsResponse, error)
	Upsert(ctx context.Context, req *dto.DemographicsRequest) (*dto.DemographicsResponse, error)
}
