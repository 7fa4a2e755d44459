package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type DemographicsRepositoryImpl struct {
	db *gorm.DB
}

func NewDemographicsRepository(db *gorm.DB) repositories.DemographicsRepository {
	return &DemographicsRepositoryImpl{db: db}
}

func (r *DemographicsRepositoryImpl) Get(ctx context.Context) (*models.VillageDemographics, error) {
	var demographics models.VillageDemographics
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&demographics).Error
	if err != nil {
		return nil, err
	}
	return &demographics, nil
}

func (r *DemographicsRepositoryImpl) Upsert(ctx context.Context, demographics *models.VillageDemographics) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.VillageDemographics
		err := tx.Order("created_at ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(demographics).Error
		}
		if err != nil {
			return err
		}

		demographics.ID = existing.ID
		return tx.Model(&models.VillageDemographics{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
			"total_population":  demographics.TotalPopulation,
			"male_population":   demographics.MalePopulation,
			"female_population": demographics.FemalePopulation,
			"total_families":    demographics.TotalFamilies,
			"altitude_mdpl":     demographics.AltitudeMdpl,
			"area_size_km":      demographics.AreaSizeKm,
			"topography":        demographics.Topography,
			"description":       demographics.Description,
		}).Error
	})
}
