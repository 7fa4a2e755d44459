package models

import (
	"time"

	"github.com/google/uuid"
)

// VillageProfile is a singleton record: at most one row is expected to exist.
type VillageProfile struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	VillageName string    `gorm:"not null"`
	SubDistrict string    `gorm:"not null"`
	District    string    `gorm:"not null"`
	Province    string    `gorm:"not null"`
	PostalCode  string    `gorm:"not null"` // exactly 5 digits
	AreaSize    float64   `gorm:"not null"` // hectares, > 0
	History     string    `gorm:"type:text;not null"` // rich HTML
	LogoURL     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (VillageProfile) TableName() string {
	return "village_profiles"
}
