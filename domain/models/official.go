package models

import (
	"time"

	"github.com/google/uuid"
)

// Official is a member of the village government structure. DisplayOrder is
// densified to match the persisted order after any drag-reorder.
type Official struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Position    string    `gorm:"not null"`
	NIP         *string   `gorm:"column:nip"` // civil-servant ID, 18 digits
	PhotoURL    *string
	StartPeriod *time.Time
	EndPeriod   *time.Time
	DisplayOrder int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Official) TableName() string {
	return "officials"
}
