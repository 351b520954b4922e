package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) Insert(ctx context.Context, report *domain.EmergencyReport) error {
	query := `
		INSERT INTO emergency_reports (id, user_id, report_type, department, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		report.ID, report.UserID, report.ReportType,
		report.Department, report.Description, report.Status,
	).Scan(&report.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert report",
			zap.String("user_id", report.UserID.String()),
			zap.Error(err),
		)
		return errors.ErrReportWriteFailed
	}

	return nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EmergencyReport, error) {
	query := `
		SELECT id, user_id, report_type, department, description, status, created_at
		FROM emergency_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list reports", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var reports []*domain.EmergencyReport
	for rows.Next() {
		var rep domain.EmergencyReport
		err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.ReportType, &rep.Department,
			&rep.Description, &rep.Status, &rep.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan report", zap.Error(err))
			continue
		}
		reports = append(reports, &rep)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Report row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}
