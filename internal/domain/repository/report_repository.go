package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
)

type ReportRepository interface {
	Insert(ctx context.Context, report *domain.EmergencyReport) error

	// ListByUser returns the user's reports, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EmergencyReport, error)
}
