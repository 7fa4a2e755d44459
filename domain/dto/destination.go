package dto

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

// DestinationImageInput is one gallery entry in create/update requests. The
// slice position, not the payload, decides display_order.
type DestinationImageInput struct {
	ImageURL string `json:"image_url" validate:"required"`
}

type DestinationUMKMInput struct {
	Name    string  `json:"name" validate:"required"`
	MapsURL *string `json:"maps_url" validate:"omitempty,url"`
}

type DestinationRequest struct {
	Name        string                  `json:"name" validate:"required,max=200"`
	Description string                  `json:"description" validate:"required,min=50"`
	Location    string                  `json:"location" validate:"required"`
	Category    string                  `json:"category" validate:"required"`
	Facilities  []string                `json:"facilities"`
	MapsURL     *string                 `json:"maps_url" validate:"omitempty,url"`
	Images      []DestinationImageInput `json:"images" validate:"min=1,max=10,dive"`
	UMKM        []DestinationUMKMInput  `json:"umkm" validate:"omitempty,dive"`
}

// ReorderImagesRequest commits a drag-reorder: the full image id set of the
// destination in its new order.
type ReorderImagesRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}

type DestinationImageResponse struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
}

type DestinationUMKMResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MapsURL      *string   `json:"maps_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
}

type DestinationResponse struct {
	ID          uuid.UUID                  `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Location    string                     `json:"location"`
	Category    string                     `json:"category"`
	Facilities  []string                   `json:"facilities"`
	MapsURL     *string                    `json:"maps_url,omitempty"`
	Images      []DestinationImageResponse `json:"images"`
	UMKM        []DestinationUMKMResponse  `json:"umkm"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

// DestinationToResponse maps a destination with its children, sorting both
// collections by display_order before rendering.
func DestinationToResponse(dest *models.TouristDestination) *DestinationResponse {
	if dest == nil {
		return nil
	}

	images := make([]DestinationImageResponse, 0, len(dest.Images))
	for _, img := range dest.Images {
		images = append(images, DestinationImageResponse{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
		})
	}
	sort.Slice(images, func(i, j int) bool { return images[i].DisplayOrder < images[j].DisplayOrder })

	umkm := make([]DestinationUMKMResponse, 0, len(dest.UMKM))
	for _, u := range dest.UMKM {
		umkm = append(umkm, DestinationUMKMResponse{
			ID:           u.ID,
			Name:         u.Name,
			MapsURL:      u.MapsURL,
			DisplayOrder: u.DisplayOrder,
		})
	}
	sort.Slice(umkm, func(i, j int) bool { return umkm[i].DisplayOrder < umkm[j].DisplayOrder })

	return &DestinationResponse{
		ID:          dest.ID,
		Name:        dest.Name,
		Description: dest.Description,
		Location:    dest.Location,
		Category:    dest.Category,
		Facilities:  dest.Facilities,
		MapsURL:     dest.MapsURL,
		Images:      images,
		UMKM:        umkm,
		CreatedAt:   dest.CreatedAt,
		UpdatedAt:   dest.UpdatedAt,
	}
}

func DestinationsToResponse(dests []models.TouristDestination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(dests))
	for i := range dests {
		out = append(out, *DestinationToResponse(&dests[i]))
	}
	return out
}
