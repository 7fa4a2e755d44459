package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desa-profil-backend/domain/models"
	"desa-profil-backend/domain/repositories"
)

type DestinationRepositoryImpl struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) repositories.DestinationRepository {
	return &DestinationRepositoryImpl{db: db}
}

func (r *DestinationRepositoryImpl) CreateWithChildren(ctx context.Context, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dest).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].DestinationID = dest.ID
			images[i].DisplayOrder = i
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		for i := range umkm {
			umkm[i].DestinationID = dest.ID
			umkm[i].DisplayOrder = i
		}
		if len(umkm) > 0 {
			if err := tx.Create(&umkm).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *DestinationRepositoryImpl) UpdateWithChildren(ctx context.Context, id uuid.UUID, dest *models.TouristDestination, images []models.DestinationImage, umkm []models.DestinationUMKM) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TouristDestination{}).Where("id = ?", id).Select(
			"name", "description", "location", "category", "facilities", "maps_url",
		).Updates(map[string]interface{}{
			"name":        dest.Name,
			"description": dest.Description,
			"location":    dest.Location,
			"category":    dest.Category,
			"facilities":  dest.Facilities,
			"maps_url":    dest.MapsURL,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Replace both child sets: delete by parent id, reinsert with
		// display_order re-derived from slice position.
		if err := tx.Where("destination_id = ?", id).Delete(&models.DestinationImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = uuid.Nil
			images[i].DestinationID = id
			images[i].DisplayOrder = i
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("destination_id = ?", id).Delete(&models.DestinationUMKM{}).Error; err != nil {
			return err
		}
		for i := range umkm {
			umkm[i].ID = uuid.Nil
			umkm[i].DestinationID = id
			umkm[i].DisplayOrder = i
		}
		if len(umkm) > 0 {
			if err := tx.Create(&umkm).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *DestinationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", id).Delete(&models.DestinationImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&models.DestinationUMKM{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.TouristDestination{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DestinationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.TouristDestination, error) {
	var dest models.TouristDestination
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("UMKM", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).
		First(&dest).Error
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.TouristDestination, int64, error) {
	var dests []models.TouristDestination
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.TouristDestination{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("UMKM", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&dests).Error

	return dests, total, err
}

func (r *DestinationRepositoryImpl) UpdateImageOrder(ctx context.Context, destinationID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentIDs []uuid.UUID
		if err := tx.Model(&models.DestinationImage{}).
			Where("destination_id = ?", destinationID).
			Pluck("id", &currentIDs).Error; err != nil {
			return err
		}

		// The commit must carry exactly the current image set; only
		// positions may change during a drag.
		if len(currentIDs) != len(orderedIDs) {
			return fmt.Errorf("order commit carries %d ids, destination has %d images", len(orderedIDs), len(currentIDs))
		}
		current := make(map[uuid.UUID]bool, len(currentIDs))
		for _, id := range currentIDs {
			current[id] = true
		}
		for _, id := range orderedIDs {
			if !current[id] {
				return fmt.Errorf("image %s does not belong to destination %s", id, destinationID)
			}
		}

		for i, id := range orderedIDs {
			if err := tx.Model(&models.DestinationImage{}).
				Where("id = ? AND destination_id = ?", id, destinationID).
				Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DestinationRepositoryImpl) GetImages(ctx context.Context, destinationID uuid.UUID) ([]models.DestinationImage, error) {
	var images []models.DestinationImage
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("display_order ASC").
		Find(&images).Error
	return images, err
}
