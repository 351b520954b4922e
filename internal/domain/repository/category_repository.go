package repository

import (
	"context"

	"github.com/safedumaguide/api/internal/domain"
)

// CategoryRepository owns the shared category taxonomy. Categories are
// additive-only: this service never updates or deletes rows.
type CategoryRepository interface {
	// ListAll returns every category ordered by display name.
	ListAll(ctx context.Context) ([]*domain.Category, error)

	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// InsertIfAbsent inserts a category under its normalized name and
	// returns the canonical row. When another writer got there first the
	// existing row is returned instead, so concurrent first-time inserts
	// of equivalent names converge on one id.
	InsertIfAbsent(ctx context.Context, displayName, normalized string) (*domain.Category, error)
}
