package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Insert(ctx context.Context, profile *domain.Profile) error

	// UpdateDetails rewrites full name, phone and address only.
	UpdateDetails(ctx context.Context, profile *domain.Profile) error

	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
