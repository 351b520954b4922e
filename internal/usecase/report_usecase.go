package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

func NewReportUseCase(reportRepo repository.ReportRepository, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Submit files a new emergency report for the acting user. Reports start
// pending; status transitions happen out of band.
func (uc *ReportUseCase) Submit(ctx context.Context, userID uuid.UUID, req dto.SubmitReportRequest) (*domain.EmergencyReport, error) {
	report := &domain.EmergencyReport{
		ID:          uuid.New(),
		UserID:      userID,
		ReportType:  strings.TrimSpace(req.ReportType),
		Department:  strings.TrimSpace(req.Department),
		Description: strings.TrimSpace(req.Description),
		Status:      domain.ReportStatusPending,
	}

	if err := uc.reportRepo.Insert(ctx, report); err != nil {
		uc.logger.Error("Failed to submit report", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	return report, nil
}

func (uc *ReportUseCase) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.EmergencyReport, error) {
	reports, err := uc.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list reports", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	return reports, nil
}
