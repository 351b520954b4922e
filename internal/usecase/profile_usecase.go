package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	avatars     repository.AvatarStorage
	logger      *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	avatars repository.AvatarStorage,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		avatars:     avatars,
		logger:      logger,
	}
}

// GetProfile loads the viewer's profile. Accounts that predate the
// profiles table get an empty row created on first load, mirroring the
// mobile client's behaviour.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if err != errors.ErrProfileNotFound {
		return nil, err
	}

	profile = &domain.Profile{
		ID:   userID,
		Role: domain.RoleUser,
	}
	if err := uc.profileRepo.Insert(ctx, profile); err != nil {
		uc.logger.Error("Failed to create empty profile", zap.String("id", userID.String()), zap.Error(err))
		return nil, err
	}

	return profile, nil
}

func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Phone = optional(req.Phone)
	profile.Address = optional(req.Address)

	if err := uc.profileRepo.UpdateDetails(ctx, profile); err != nil {
		uc.logger.Error("Failed to update profile", zap.String("id", userID.String()), zap.Error(err))
		return nil, err
	}

	return profile, nil
}

// UploadAvatar pushes the image to object storage and records the public
// URL on the profile row.
func (uc *ProfileUseCase) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, data io.Reader) (*dto.AvatarResponse, error) {
	url, err := uc.avatars.Upload(ctx, userID, contentType, data)
	if err != nil {
		return nil, err
	}

	if err := uc.profileRepo.UpdateAvatarURL(ctx, userID, url); err != nil {
		uc.logger.Error("Failed to store avatar URL", zap.String("id", userID.String()), zap.Error(err))
		return nil, err
	}

	return &dto.AvatarResponse{AvatarURL: url}, nil
}
