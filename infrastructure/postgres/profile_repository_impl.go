package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Get(ctx context.Context) (*models.VillageProfile, error) {
	var profile models.VillageProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert keeps the table a singleton: the first save inserts, every later
// save updates the existing row in place.
func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, profile *models.VillageProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.VillageProfile
		err := tx.Order("created_at ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(profile).Error
		}
		if err != nil {
			return err
		}

		profile.ID = existing.ID
		return tx.Model(&models.VillageProfile{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
			"village_name": profile.VillageName,
			"sub_district": profile.SubDistrict,
			"district":     profile.District,
			"province":     profile.Province,
			"postal_code":  profile.PostalCode,
			"area_size":    profile.AreaSize,
			"history":      profile.History,
			"logo_url":     profile.LogoURL,
		}).Error
	})
}
