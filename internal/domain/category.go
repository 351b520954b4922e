package domain

import (
	"strings"
	"time"
)

// Category is one row of the shared directory taxonomy. Exactly one row
// exists per normalized name; NameNormalized carries a unique index so
// concurrent first-time inserts converge on a single row.
type Category struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	NameNormalized string    `json:"-" db:"name_normalized"`
	Color          *string   `json:"color,omitempty" db:"color"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// NormalizeCategoryName trims, lowercases and collapses internal
// whitespace runs to a single space. Two raw names are the same category
// iff they normalize equal.
func NormalizeCategoryName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// CategoryDisplayName trims and collapses whitespace but preserves the
// user's casing for display.
func CategoryDisplayName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
