package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/token"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	tokens      *token.Manager
	tokenTTL    time.Duration
	logger      *zap.Logger
}

func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	tokens *token.Manager,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		tokens:      tokens,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Register creates the auth user and its profile row in one step; new
// accounts always start with the standard role.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil && err != errors.ErrProfileNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	}

	if err := uc.profileRepo.Insert(ctx, profile); err != nil {
		uc.logger.Error("Failed to create profile", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return uc.issueToken(profile)
}

func (uc *AuthUseCase) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := uc.profileRepo.GetByEmail(ctx, email)
	if err == errors.ErrProfileNotFound {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueToken(profile)
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return errors.ErrInternalServer
	}

	if err := uc.profileRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		uc.logger.Error("Failed to update password", zap.String("id", userID.String()), zap.Error(err))
		return err
	}

	return nil
}

func (uc *AuthUseCase) issueToken(profile *domain.Profile) (*dto.TokenResponse, error) {
	tok, err := uc.tokens.Issue(profile.ID, string(profile.Role))
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.String("id", profile.ID.String()), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.TokenResponse{
		Token:     tok,
		UserID:    profile.ID.String(),
		Role:      string(profile.Role),
		ExpiresIn: int64(uc.tokenTTL.Seconds()),
	}, nil
}
