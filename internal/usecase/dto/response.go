package dto

import (
	"time"

	"github.com/safedumaguide/api/internal/domain"
)

// PlaceView is a place joined with its category plus the viewer's edit
// right, as rendered on the directory screen.
type PlaceView struct {
	ID            string    `json:"id"`
	CategoryID    int64     `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	CategoryColor *string   `json:"category_color,omitempty"`
	Name          string    `json:"name"`
	Address       *string   `json:"address,omitempty"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CanEdit       bool      `json:"can_edit"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DirectoryResponse struct {
	Categories []*domain.Category `json:"categories"`
	Places     []PlaceView        `json:"places"`
	Total      int                `json:"-"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
