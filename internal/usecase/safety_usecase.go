package usecase

import (
	"context"
	"time"

	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"go.uber.org/zap"
)

// SafetyUseCase serves the read-mostly home-screen reference data
// through a short-lived cache.
type SafetyUseCase struct {
	safetyRepo repository.SafetyRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewSafetyUseCase(
	safetyRepo repository.SafetyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SafetyUseCase {
	return &SafetyUseCase{
		safetyRepo: safetyRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Contacts returns the active quick-dial contacts. Cache failures fall
// through to the database.
func (uc *SafetyUseCase) Contacts(ctx context.Context) ([]*domain.EmergencyContact, error) {
	cached, err := uc.cacheRepo.GetContacts(ctx)
	if err != nil {
		uc.logger.Warn("Contacts cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	contacts, err := uc.safetyRepo.ListContacts(ctx, true)
	if err != nil {
		uc.logger.Error("Failed to load emergency contacts", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetContacts(ctx, contacts, uc.cacheTTL); err != nil {
		uc.logger.Warn("Contacts cache write failed", zap.Error(err))
	}

	return contacts, nil
}

func (uc *SafetyUseCase) Tips(ctx context.Context) ([]*domain.SafetyTip, error) {
	cached, err := uc.cacheRepo.GetTips(ctx)
	if err != nil {
		uc.logger.Warn("Tips cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	tips, err := uc.safetyRepo.ListTips(ctx)
	if err != nil {
		uc.logger.Error("Failed to load safety tips", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetTips(ctx, tips, uc.cacheTTL); err != nil {
		uc.logger.Warn("Tips cache write failed", zap.Error(err))
	}

	return tips, nil
}
