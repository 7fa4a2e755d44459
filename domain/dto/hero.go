package dto

import (
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type HeroRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Subtitle     *string `json:"subtitle"`
	CTAText      string  `json:"cta_text" validate:"required,max=50"`
	CTALink      string  `json:"cta_link" validate:"required"`
	ImageURL     string  `json:"image_url" validate:"required"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
}

// HeroSetActiveRequest is the partial toggle; no other field is touched.
type HeroSetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type HeroResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subtitle     *string   `json:"subtitle,omitempty"`
	CTAText      string    `json:"cta_text"`
	CTALink      string    `json:"cta_link"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func HeroToResponse(hero *models.HeroSection) *HeroResponse {
	if hero == nil {
		return nil
	}
	return &HeroResponse{
		ID:           hero.ID,
		Title:        hero.Title,
		Subtitle:     hero.Subtitle,
		CTAText:      hero.CTAText,
		CTALink:      hero.CTALink,
		ImageURL:     hero.ImageURL,
		IsActive:     hero.IsActive,
		DisplayOrder: hero.DisplayOrder,
		CreatedAt:    hero.CreatedAt,
		UpdatedAt:    hero.UpdatedAt,
	}
}

func HeroesToResponse(heroes []models.HeroSection) []HeroResponse {
	out := make([]HeroResponse, 0, len(heroes))
	for i := range heroes {
		out = append(out, *HeroToResponse(&heroes[i]))
	}
	return out
}
