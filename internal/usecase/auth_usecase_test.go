package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/token"
	"github.com/safedumaguide/api/internal/usecase"
	"github.com/safedumaguide/api/internal/usecase/dto"
)

func newAuthUC(profileRepo *MockProfileRepository) *usecase.AuthUseCase {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUseCase(profileRepo, tokens, time.Hour, zap.NewNop())
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile with standard role and returns a token", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByEmail", ctx, "juan@example.com").Return(nil, errors.ErrProfileNotFound)
		mockProfile.On("Insert", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.Email == "juan@example.com" &&
				p.FullName == "Juan Dela Cruz" &&
				p.Role == domain.RoleUser &&
				p.PasswordHash != "" &&
				p.PasswordHash != "secret-password"
		})).Return(nil)

		resp, err := uc.Register(ctx, dto.RegisterRequest{
			Email:    "  Juan@Example.COM ",
			Password: "secret-password",
			FullName: "Juan Dela Cruz",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "user", resp.Role)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		mockProfile.AssertExpectations(t)
	})

	t.Run("taken email is rejected", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByEmail", ctx, "juan@example.com").
			Return(&domain.Profile{ID: uuid.New(), Email: "juan@example.com"}, nil)

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Email:    "juan@example.com",
			Password: "secret-password",
			FullName: "Juan Dela Cruz",
		})

		assert.Equal(t, errors.ErrEmailTaken, err)
		mockProfile.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	profile := &domain.Profile{
		ID:           uuid.New(),
		Email:        "juan@example.com",
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByEmail", ctx, "juan@example.com").Return(profile, nil)

		resp, err := uc.SignIn(ctx, dto.SignInRequest{
			Email:    "juan@example.com",
			Password: "secret-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, profile.ID.String(), resp.UserID)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByEmail", ctx, "juan@example.com").Return(profile, nil)

		_, err := uc.SignIn(ctx, dto.SignInRequest{
			Email:    "juan@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email maps to invalid credentials, not not-found", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByEmail", ctx, "nobody@example.com").Return(nil, errors.ErrProfileNotFound)

		_, err := uc.SignIn(ctx, dto.SignInRequest{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})

		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})
}

func TestAuthUseCase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	profile := &domain.Profile{ID: userID, PasswordHash: string(hash)}

	t.Run("current password must match", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByID", ctx, userID).Return(profile, nil)

		err := uc.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "new-password-123",
		})

		assert.Equal(t, errors.ErrInvalidCredentials, err)
		mockProfile.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores a new hash on success", func(t *testing.T) {
		mockProfile := &MockProfileRepository{}
		uc := newAuthUC(mockProfile)

		mockProfile.On("GetByID", ctx, userID).Return(profile, nil)
		mockProfile.On("UpdatePassword", ctx, userID, mock.MatchedBy(func(h string) bool {
			return h != "" && h != string(hash)
		})).Return(nil)

		err := uc.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password-123",
		})

		assert.NoError(t, err)
		mockProfile.AssertExpectations(t)
	})
}
