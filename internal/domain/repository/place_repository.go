package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
)

// PlaceRepository persists directory places. Mutations scoped by creator
// take a non-nil creator id; passing nil lifts the scope for
// administrative callers.
type PlaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// ListAll returns every place ordered by name, optionally filtered to
	// a set of categories. Visibility filtering is the caller's concern.
	ListAll(ctx context.Context, categoryIDs []int64) ([]*domain.Place, error)

	Insert(ctx context.Context, place *domain.Place) error

	// Update rewrites the mutable fields of one place. With a non-nil
	// creator the row must match both id and creator or no row is
	// touched.
	Update(ctx context.Context, place *domain.Place, creator *uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID, creator *uuid.UUID) error
}
