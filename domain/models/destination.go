package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TouristDestination owns its image and UMKM rows. Children are written and
// deleted together with the parent inside one transaction.
type TouristDestination struct {
	ID          uuid.UUID      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"type:text;not null"`
	Location    string         `gorm:"not null"`
	Category    string         `gorm:"not null;index"`
	Facilities  pq.StringArray `gorm:"type:text[]"`
	MapsURL     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations. Readers must still order by display_order explicitly; the
	// store does not guarantee read order.
	Images []DestinationImage `gorm:"foreignKey:DestinationID"`
	UMKM   []DestinationUMKM  `gorm:"foreignKey:DestinationID"`
}

func (TouristDestination) TableName() string {
	return "tourist_destinations"
}

// DestinationImage is an ordered gallery entry. DisplayOrder runs 0..n-1
// within a destination and is recomputed on every write or reorder.
type DestinationImage struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL      string    `gorm:"not null"`
	DisplayOrder  int       `gorm:"not null;default:0"`

	CreatedAt time.Time
}

func (DestinationImage) TableName() string {
	return "destination_images"
}

// DestinationUMKM is a local micro/small business tied to a destination.
type DestinationUMKM struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"not null"`
	MapsURL       *string
	DisplayOrder  int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DestinationUMKM) TableName() string {
	return "destination_umkm"
}
