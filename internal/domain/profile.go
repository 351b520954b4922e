package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user record backing both authentication and the
// profile screen. Role defaults to user when absent.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Address      *string   `json:"address,omitempty" db:"address"`
	AvatarURL    *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
