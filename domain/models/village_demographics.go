package models

import (
	"time"

	"github.com/google/uuid"
)

// VillageDemographics is a singleton record. Total population is expected to
// equal or exceed male+female but this is deliberately not enforced.
type VillageDemographics struct {
	ID               uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TotalPopulation  int       `gorm:"not null;default:0"`
	MalePopulation   int       `gorm:"not null;default:0"`
	FemalePopulation int       `gorm:"not null;default:0"`
	TotalFamilies    int       `gorm:"not null;default:0"`
	AltitudeMdpl     int       `gorm:"not null;default:0"`
	AreaSizeKm       float64   `gorm:"not null;default:0"`
	Topography       string    `gorm:"not null"`
	Description      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VillageDemographics) TableName() string {
	return "village_demographics"
}
