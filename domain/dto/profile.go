package dto

import (
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type ProfileRequest struct {
	VillageName string  `json:"village_name" validate:"required"`
	SubDistrict string  `json:"sub_district" validate:"required"`
	District    string  `json:"district" validate:"required"`
	Province    string  `json:"province" validate:"required"`
	PostalCode  string  `json:"postal_code" validate:"required,len=5,numeric"`
	AreaSize    float64 `json:"area_size" validate:"required,gt=0"`
	History     string  `json:"history" validate:"required,strippedmin=100"`
	LogoURL     *string `json:"logo_url"`
}

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	VillageName string    `json:"village_name"`
	SubDistrict string    `json:"sub_district"`
	District    string    `json:"district"`
	Province    string    `json:"province"`
	PostalCode  string    `json:"postal_code"`
	AreaSize    float64   `json:"area_size"`
	History     string    `json:"history"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *ProfileRequest) ToModel() *models.VillageProfile {
	return &models.VillageProfile{
		VillageName: r.VillageName,
		SubDistrict: r.SubDistrict,
		District:    r.District,
		Province:    r.Province,
		PostalCode:  r.PostalCode,
		AreaSize:    r.AreaSize,
		History:     r.History,
		LogoURL:     r.LogoURL,
	}
}

func ProfileToResponse(profile *models.VillageProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		ID:          profile.ID,
		VillageName: profile.VillageName,
		SubDistrict: profile.SubDistrict,
		District:    profile.District,
		Province:    profile.Province,
		PostalCode:  profile.PostalCode,
		AreaSize:    profile.AreaSize,
		History:     profile.History,
		LogoURL:     profile.LogoURL,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
