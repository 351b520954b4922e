package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/delivery/http/middleware"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/utils"
	"github.com/safedumaguide/api/internal/pkg/validator"
	"github.com/safedumaguide/api/internal/usecase"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

// DirectoryHandler serves the place directory: list, add, edit, delete.
type DirectoryHandler struct {
	directoryUC *usecase.DirectoryUseCase
	logger      *zap.Logger
}

func NewDirectoryHandler(directoryUC *usecase.DirectoryUseCase, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
		logger:      logger,
	}
}

// List returns categories plus the places visible to the viewer,
// optionally filtered by ?category_id=1,2.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	categoryIDs, err := parseCategoryFilter(c.Query("category_id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)

	result, err := h.directoryUC.ListDirectory(c.Context(), viewer, categoryIDs)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

func (h *DirectoryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)

	place, err := h.directoryUC.GetPlace(c.Context(), viewer, id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

func (h *DirectoryHandler) Create(c *fiber.Ctx) error {
	var req dto.SavePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)

	place, err := h.directoryUC.CreatePlace(c.Context(), viewer, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: place})
}

func (h *DirectoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)

	place, err := h.directoryUC.UpdatePlace(c.Context(), viewer, id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

func (h *DirectoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	viewer := middleware.ViewerFromCtx(c)

	if err := h.directoryUC.DeletePlace(c.Context(), viewer, id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseCategoryFilter(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
