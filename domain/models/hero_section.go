package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSection is a homepage banner. DisplayOrder is a manually assigned
// integer (not densified); the public site shows the lowest-ordered active
// section.
type HeroSection struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string    `gorm:"not null"`
	Subtitle     *string
	CTAText      string `gorm:"column:cta_text;not null"`
	CTALink      string `gorm:"column:cta_link;not null"`
	ImageURL     string `gorm:"not null"`
	IsActive     bool   `gorm:"default:false;index"`
	DisplayOrder int    `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (HeroSection) TableName() string {
	return "hero_sections"
}
