package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safedumaguide/api/internal/delivery/http/middleware"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/utils"
	"github.com/safedumaguide/api/internal/pkg/validator"
	"github.com/safedumaguide/api/internal/usecase"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)
	if !viewer.Authenticated() {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	report, err := h.reportUC.Submit(c.Context(), *viewer.UserID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: report})
}

func (h *ReportHandler) ListMine(c *fiber.Ctx) error {
	viewer := middleware.ViewerFromCtx(c)
	if !viewer.Authenticated() {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	reports, err := h.reportUC.ListMine(c.Context(), *viewer.UserID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"reports": reports,
	}, &utils.Meta{
		Total: len(reports),
	})
}
