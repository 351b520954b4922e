package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, name_normalized, color, created_at
		FROM directory_categories
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrCategoryReadFailed
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameNormalized, &c.Color, &c.CreatedAt); err != nil {
			r.logger.Error("Failed to scan category", zap.Error(err))
			continue
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Category row iteration failed", zap.Error(err))
		return nil, errors.ErrCategoryReadFailed
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, name_normalized, color, created_at
		FROM directory_categories
		WHERE id = $1
	`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.NameNormalized, &c.Color, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCategoryReadFailed
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrCategoryReadFailed
	}

	return &c, nil
}

// InsertIfAbsent relies on the unique index on name_normalized: the
// insert silently loses to a concurrent writer and the follow-up select
// returns whichever row won.
func (r *categoryRepository) InsertIfAbsent(ctx context.Context, displayName, normalized string) (*domain.Category, error) {
	insert := `
		INSERT INTO directory_categories (name, name_normalized)
		VALUES ($1, $2)
		ON CONFLICT (name_normalized) DO NOTHING
		RETURNING id, name, name_normalized, color, created_at
	`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, insert, displayName, normalized).Scan(
		&c.ID, &c.Name, &c.NameNormalized, &c.Color, &c.CreatedAt,
	)
	if err == nil {
		return &c, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to insert category",
			zap.String("name", displayName),
			zap.Error(err),
		)
		return nil, errors.ErrCategoryWriteFailed
	}

	// Conflict path: another writer inserted the equivalent name first.
	query := `
		SELECT id, name, name_normalized, color, created_at
		FROM directory_categories
		WHERE name_normalized = $1
	`
	err = r.db.QueryRowContext(ctx, query, normalized).Scan(
		&c.ID, &c.Name, &c.NameNormalized, &c.Color, &c.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to re-read category after conflict",
			zap.String("normalized", normalized),
			zap.Error(err),
		)
		return nil, errors.ErrCategoryWriteFailed
	}

	return &c, nil
}
