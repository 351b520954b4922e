package repository

import (
	"context"
	"time"

	"github.com/safedumaguide/api/internal/domain"
)

// CacheRepository fronts the read-mostly reference data. A nil result
// with a nil error is a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetContacts(ctx context.Context) ([]*domain.EmergencyContact, error)
	SetContacts(ctx context.Context, contacts []*domain.EmergencyContact, ttl time.Duration) error

	GetTips(ctx context.Context) ([]*domain.SafetyTip, error)
	SetTips(ctx context.Context, tips []*domain.SafetyTip, ttl time.Duration) error

	GetCategories(ctx context.Context) ([]*domain.Category, error)
	SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error
	InvalidateCategories(ctx context.Context) error
}
