package repository

import (
	"context"

	"github.com/safedumaguide/api/internal/domain"
)

// SafetyRepository reads the admin-maintained reference tables shown on
// the home screen. This service never writes them.
type SafetyRepository interface {
	// ListContacts returns contacts ordered by sort_order. With
	// activeOnly set, inactive rows are skipped.
	ListContacts(ctx context.Context, activeOnly bool) ([]*domain.EmergencyContact, error)

	ListTips(ctx context.Context) ([]*domain.SafetyTip, error)
}
