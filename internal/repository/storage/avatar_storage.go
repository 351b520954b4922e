package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/config"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// avatarStorage keeps profile pictures in a Supabase storage bucket and
// hands back the public URL stored on the profile row.
type avatarStorage struct {
	client *storage_go.Client
	bucket string
	logger *zap.Logger
}

func NewAvatarStorage(cfg *config.StorageConfig, logger *zap.Logger) repository.AvatarStorage {
	client := storage_go.NewClient(cfg.URL, cfg.ServiceKey, nil)

	return &avatarStorage{
		client: client,
		bucket: cfg.AvatarBucket,
		logger: logger,
	}
}

func (s *avatarStorage) Upload(ctx context.Context, userID uuid.UUID, contentType string, data io.Reader) (string, error) {
	// One object per user, overwritten on every upload.
	path := fmt.Sprintf("%s/avatar", userID.String())
	upsert := true

	_, err := s.client.UploadFile(s.bucket, path, data, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		s.logger.Error("Failed to upload avatar",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return "", errors.ErrAvatarUploadFailed
	}

	resp := s.client.GetPublicUrl(s.bucket, path)
	return resp.SignedURL, nil
}
