package repositories

import (
	"context"

	"desa-profil-backend/domain/models"
)

// DemographicsRepository manages the singleton demographics row.
type DemographicsRepository interface {
	Get(ctx context.Context) (*models.VillageDemographics, error)
	Upsert(ctx context.Context, demographics *models.VillageDemographics) error
}
