package repositories

import (
	"context"

	"desa-profil-backend/domain/models"
)

// ProfileRepository manages the singleton village profile row.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.VillageProfile, error)
	Upsert(ctx context.Context, profile *models.VillageProfile) error
}
