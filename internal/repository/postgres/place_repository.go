package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const placeColumns = `
	id, category_id, name, address, contact_number,
	latitude, longitude, created_by, created_at, updated_at
`

func scanPlace(row interface{ Scan(...interface{}) error }) (*domain.Place, error) {
	var p domain.Place
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Address, &p.ContactNumber,
		&p.Latitude, &p.Longitude, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directory_places
		WHERE id = $1
	`, placeColumns)

	p, err := scanPlace(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return p, nil
}

func (r *placeRepository) ListAll(ctx context.Context, categoryIDs []int64) ([]*domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM directory_places
	`, placeColumns)

	var args []interface{}
	if len(categoryIDs) > 0 {
		query += " WHERE category_id = ANY($1)"
		args = append(args, pq.Array(categoryIDs))
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			r.logger.Error("Failed to scan place", zap.Error(err))
			continue
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Place row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) Insert(ctx context.Context, place *domain.Place) error {
	query := `
		INSERT INTO directory_places (
			id, category_id, name, address, contact_number,
			latitude, longitude, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		place.ID, place.CategoryID, place.Name, place.Address, place.ContactNumber,
		place.Latitude, place.Longitude, place.CreatedBy,
	).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert place",
			zap.String("name", place.Name),
			zap.Error(err),
		)
		return errors.ErrPlaceWriteFailed
	}

	return nil
}

func (r *placeRepository) Update(ctx context.Context, place *domain.Place, creator *uuid.UUID) error {
	query := `
		UPDATE directory_places
		SET category_id = $2,
		    name = $3,
		    address = $4,
		    contact_number = $5,
		    latitude = $6,
		    longitude = $7,
		    updated_at = now()
		WHERE id = $1
	`

	args := []interface{}{
		place.ID, place.CategoryID, place.Name, place.Address,
		place.ContactNumber, place.Latitude, place.Longitude,
	}
	if creator != nil {
		query += " AND created_by = $8"
		args = append(args, *creator)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update place",
			zap.String("id", place.ID.String()),
			zap.Error(err),
		)
		return errors.ErrPlaceWriteFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrPlaceWriteFailed
	}
	if affected == 0 {
		return errors.ErrPlaceNotFound
	}

	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID, creator *uuid.UUID) error {
	query := `DELETE FROM directory_places WHERE id = $1`

	args := []interface{}{id}
	if creator != nil {
		query += " AND created_by = $2"
		args = append(args, *creator)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to delete place", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrPlaceWriteFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrPlaceWriteFailed
	}
	if affected == 0 {
		return errors.ErrPlaceNotFound
	}

	return nil
}
