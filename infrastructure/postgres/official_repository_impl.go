package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type OfficialRepositoryImpl struct {
	db *gorm.DB
}

func NewOfficialRepository(db *gorm.DB) repositories.OfficialRepository {
	return &OfficialRepositoryImpl{db: db}
}

func (r *OfficialRepositoryImpl) Create(ctx context.Context, official *models.Official) error {
	return r.db.WithContext(ctx).Create(official).Error
}

func (r *OfficialRepositoryImpl) Update(ctx context.Context, id uuid.UUID, official *models.Official) error {
	result := r.db.WithContext(ctx).Model(&models.Official{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":         official.Name,
		"position":     official.Position,
		"nip":          official.NIP,
		"photo_url":    official.PhotoURL,
		"start_period": official.StartPeriod,
		"end_period":   official.EndPeriod,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfficialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Official{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfficialRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Official, error) {
	var official models.Official
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&official).Error
	if err != nil {
		return nil, err
	}
	return &official, nil
}

func (r *OfficialRepositoryImpl) List(ctx context.Context) ([]models.Official, error) {
	var officials []models.Official
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC").
		Find(&officials).Error
	return officials, err
}

func (r *OfficialRepositoryImpl) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentIDs []uuid.UUID
		if err := tx.Model(&models.Official{}).Pluck("id", &currentIDs).Error; err != nil {
			return err
		}

		if len(currentIDs) != len(orderedIDs) {
			return fmt.Errorf("order commit carries %d ids, %d officials exist", len(orderedIDs), len(currentIDs))
		}
		current := make(map[uuid.UUID]bool, len(currentIDs))
		for _, id := range currentIDs {
			current[id] = true
		}
		for _, id := range orderedIDs {
			if !current[id] {
				return fmt.Errorf("unknown official %s in order commit", id)
			}
		}

		for i, id := range orderedIDs {
			if err := tx.Model(&models.Official{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
