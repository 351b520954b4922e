package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const profileColumns = `
	id, email, full_name, phone, address, avatar_url, role, password_hash, created_at
`

func (r *profileRepository) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.Phone, &p.Address,
		&p.AvatarURL, &p.Role, &p.PasswordHash, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Role == "" {
		p.Role = domain.RoleUser
	}
	return &p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := r.scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1)`

	p, err := r.scanProfile(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, errors.ErrProfileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get profile by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return p, nil
}

func (r *profileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, phone, address, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		profile.ID, profile.Email, profile.FullName, profile.Phone,
		profile.Address, profile.Role, profile.PasswordHash,
	).Scan(&profile.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert profile", zap.String("id", profile.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *profileRepository) UpdateDetails(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, phone = $3, address = $4
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.FullName, profile.Phone, profile.Address,
	)
	if err != nil {
		r.logger.Error("Failed to update profile", zap.String("id", profile.ID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, avatarURL); err != nil {
		r.logger.Error("Failed to update avatar URL", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *profileRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE profiles SET password_hash = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, passwordHash); err != nil {
		r.logger.Error("Failed to update password", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
