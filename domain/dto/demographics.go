package dto

import (
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type DemographicsRequest struct {
	TotalPopulation  int     `json:"total_population" validate:"gte=0"`
	MalePopulation   int     `json:"male_population" validate:"gte=0"`
	FemalePopulation int     `json:"female_population" validate:"gte=0"`
	TotalFamilies    int     `json:"total_families" validate:"gte=0"`
	AltitudeMdpl     int     `json:"altitude_mdpl"`
	AreaSizeKm       float64 `json:"area_size_km" validate:"gte=0"`
	Topography       string  `json:"topography" validate:"required"`
	Description      *string `json:"description"`
}

type DemographicsResponse struct {
	ID               uuid.UUID `json:"id"`
	TotalPopulation  int       `json:"total_population"`
	MalePopulation   int       `json:"male_population"`
	FemalePopulation int       `json:"female_population"`
	TotalFamilies    int       `json:"total_families"`
	AltitudeMdpl     int       `json:"altitude_mdpl"`
	AreaSizeKm       float64   `json:"area_size_km"`
	Topography       string    `json:"topography"`
	Description      *string   `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (r *DemographicsRequest) ToModel() *models.VillageDemographics {
	return &models.VillageDemographics{
		TotalPopulation:  r.TotalPopulation,
		MalePopulation:   r.MalePopulation,
		FemalePopulation: r.FemalePopulation,
		TotalFamilies:    r.TotalFamilies,
		AltitudeMdpl:     r.AltitudeMdpl,
		AreaSizeKm:       r.AreaSizeKm,
		Topography:       r.Topography,
		Description:      r.Description,
	}
}

func DemographicsToResponse(d *models.VillageDemographics) *DemographicsResponse {
	if d == nil {
		return nil
	}
	return &DemographicsResponse{
		ID:               d.ID,
		TotalPopulation:  d.TotalPopulation,
		MalePopulation:   d.MalePopulation,
		FemalePopulation: d.FemalePopulation,
		TotalFamilies:    d.TotalFamilies,
		AltitudeMdpl:     d.AltitudeMdpl,
		AreaSizeKm:       d.AreaSizeKm,
		Topography:       d.Topography,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
