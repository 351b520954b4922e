package repository

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AvatarStorage uploads profile pictures to object storage and returns a
// publicly reachable URL.
type AvatarStorage interface {
	Upload(ctx context.Context, userID uuid.UUID, contentType string, data io.Reader) (string, error)
}
