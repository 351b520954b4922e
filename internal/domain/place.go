package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place is a directory entry. CreatedBy is nil for seed places that ship
// with the app; those are globally visible and not editable by ordinary
// users.
type Place struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CategoryID    int64      `json:"category_id" db:"category_id"`
	Name          string     `json:"name" db:"name"`
	Address       *string    `json:"address,omitempty" db:"address"`
	ContactNumber *string    `json:"contact_number,omitempty" db:"contact_number"`
	Latitude      *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty" db:"longitude"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty" db:"created_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
