package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReceived ReportStatus = "received"
	ReportStatusResolved ReportStatus = "resolved"
)

// EmergencyReport is a user-submitted incident report addressed to one of
// the emergency departments.
type EmergencyReport struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`
	ReportType  string       `json:"report_type" db:"report_type"`
	Department  string       `json:"department" db:"department"`
	Description string       `json:"description" db:"description"`
	Status      ReportStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
