package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safedumaguide/api/internal/pkg/utils"
	"github.com/safedumaguide/api/internal/usecase"
	"go.uber.org/zap"
)

type SafetyHandler struct {
	safetyUC *usecase.SafetyUseCase
	logger   *zap.Logger
}

func NewSafetyHandler(safetyUC *usecase.SafetyUseCase, logger *zap.Logger) *SafetyHandler {
	return &SafetyHandler{
		safetyUC: safetyUC,
		logger:   logger,
	}
}

func (h *SafetyHandler) Contacts(c *fiber.Ctx) error {
	contacts, err := h.safetyUC.Contacts(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"contacts": contacts,
	}, &utils.Meta{
		Total: len(contacts),
	})
}

func (h *SafetyHandler) Tips(c *fiber.Ctx) error {
	tips, err := h.safetyUC.Tips(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"tips": tips,
	}, &utils.Meta{
		Total: len(tips),
	})
}
