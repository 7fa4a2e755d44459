package dto

import (
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

type OfficialRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Position    string  `json:"position" validate:"required,max=100"`
	NIP         *string `json:"nip" validate:"omitempty,nip"`
	PhotoURL    *string `json:"photo_url"`
	StartPeriod *string `json:"start_period" validate:"omitempty,datetime=2006-01-02"`
	EndPeriod   *string `json:"end_period" validate:"omitempty,datetime=2006-01-02"`
}

// OfficialReorderRequest commits a drag-reorder of the whole list.
type OfficialReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}

type OfficialResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Position     string     `json:"position"`
	NIP          *string    `json:"nip,omitempty"`
	PhotoURL     *string    `json:"photo_url,omitempty"`
	StartPeriod  *time.Time `json:"start_period,omitempty"`
	EndPeriod    *time.Time `json:"end_period,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToModel parses the request's date strings into an Official. Validation has
// already checked the date format.
func (r *OfficialRequest) ToModel() *models.Official {
	official := &models.Official{
		Name:     r.Name,
		Position: r.Position,
		NIP:      r.NIP,
		PhotoURL: r.PhotoURL,
	}
	if r.StartPeriod != nil {
		if t, err := time.Parse("2006-01-02", *r.StartPeriod); err == nil {
			official.StartPeriod = &t
		}
	}
	if r.EndPeriod != nil {
		if t, err := time.Parse("2006-01-02", *r.EndPeriod); err == nil {
			official.EndPeriod = &t
		}
	}
	return official
}

func OfficialToResponse(official *models.Official) *OfficialResponse {
	if official == nil {
		return nil
	}
	return &OfficialResponse{
		ID:           official.ID,
		Name:         official.Name,
		Position:     official.Position,
		NIP:          official.NIP,
		PhotoURL:     official.PhotoURL,
		StartPeriod:  official.StartPeriod,
		EndPeriod:    official.EndPeriod,
		DisplayOrder: official.DisplayOrder,
		CreatedAt:    official.CreatedAt,
		UpdatedAt:    official.UpdatedAt,
	}
}

func OfficialsToResponse(officials []models.Official) []OfficialResponse {
	out := make([]OfficialResponse, 0, len(officials))
	for i := range officials {
		out = append(out, *OfficialToResponse(&officials[i]))
	}
	return out
}
