package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/safedumaguide/api/internal/delivery/http/middleware"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/utils"
	"github.com/safedumaguide/api/internal/pkg/validator"
	"github.com/safedumaguide/api/internal/usecase"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	viewer := middleware.ViewerFromCtx(c)
	if !viewer.Authenticated() {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	profile, err := h.profileUC.GetProfile(c.Context(), *viewer.UserID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
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

	profile, err := h.profileUC.UpdateProfile(c.Context(), *viewer.UserID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}

// UploadAvatar takes the raw image body; the content type comes from the
// request header.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	viewer := middleware.ViewerFromCtx(c)
	if !viewer.Authenticated() {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	body := c.Body()
	if len(body) == 0 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	contentType := c.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := h.profileUC.UploadAvatar(c.Context(), *viewer.UserID, contentType, bytes.NewReader(body))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
