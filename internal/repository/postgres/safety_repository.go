package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type safetyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSafetyRepository(db *DB) repository.SafetyRepository {
	return &safetyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *safetyRepository) ListContacts(ctx context.Context, activeOnly bool) ([]*domain.EmergencyContact, error) {
	query := `
		SELECT id, name, phone_number, is_active, is_live, sort_order
		FROM emergency_contacts
	`
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY sort_order, id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list emergency contacts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var contacts []*domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.IsActive, &c.IsLive, &c.SortOrder)
		if err != nil {
			r.logger.Error("Failed to scan emergency contact", zap.Error(err))
			continue
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Emergency contact row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return contacts, nil
}

func (r *safetyRepository) ListTips(ctx context.Context) ([]*domain.SafetyTip, error) {
	query := `
		SELECT id, tip, sort_order
		FROM safety_tips
		ORDER BY sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list safety tips", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var tips []*domain.SafetyTip
	for rows.Next() {
		var t domain.SafetyTip
		if err := rows.Scan(&t.ID, &t.Tip, &t.SortOrder); err != nil {
			r.logger.Error("Failed to scan safety tip", zap.Error(err))
			continue
		}
		tips = append(tips, &t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Safety tip row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tips, nil
}
