package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/pkg/utils"
	"github.com/safedumaguide/api/internal/usecase/dto"
	"go.uber.org/zap"
)

// DirectoryUseCase reconciles user-submitted places against the shared
// category taxonomy and applies the ownership policy on every read and
// mutation.
type DirectoryUseCase struct {
	categoryRepo  repository.CategoryRepository
	placeRepo     repository.PlaceRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	categoriesTTL time.Duration
}

func NewDirectoryUseCase(
	categoryRepo repository.CategoryRepository,
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	categoriesTTL time.Duration,
) *DirectoryUseCase {
	return &DirectoryUseCase{
		categoryRepo:  categoryRepo,
		placeRepo:     placeRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		categoriesTTL: categoriesTTL,
	}
}

// ResolveCategory maps a raw user-typed category name to the canonical
// category id, creating the category on first use. Equivalent names
// (same after trimming, lowercasing and whitespace collapsing) always
// resolve to the same id; the display name keeps the user's casing. The
// hit path performs no write.
func (uc *DirectoryUseCase) ResolveCategory(ctx context.Context, rawName string) (int64, error) {
	normalized := domain.NormalizeCategoryName(rawName)
	if normalized == "" {
		return 0, errors.ErrEmptyCategoryName
	}

	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load categories for resolution", zap.Error(err))
		return 0, err
	}

	for _, c := range categories {
		if domain.NormalizeCategoryName(c.Name) == normalized {
			return c.ID, nil
		}
	}

	created, err := uc.categoryRepo.InsertIfAbsent(ctx, domain.CategoryDisplayName(rawName), normalized)
	if err != nil {
		uc.logger.Error("Failed to create category",
			zap.String("name", rawName),
			zap.Error(err),
		)
		return 0, err
	}

	// The category list changed for every viewer.
	if err := uc.cacheRepo.InvalidateCategories(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate category cache", zap.Error(err))
	}

	return created.ID, nil
}

// ListDirectory returns the categories plus the places the viewer is
// allowed to see, each annotated with the viewer's edit right.
func (uc *DirectoryUseCase) ListDirectory(
	ctx context.Context,
	viewer domain.Viewer,
	categoryIDs []int64,
) (*dto.DirectoryResponse, error) {
	categories, err := uc.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	places, err := uc.placeRepo.ListAll(ctx, categoryIDs)
	if err != nil {
		uc.logger.Error("Failed to load places", zap.Error(err))
		return nil, err
	}

	byID := make(map[int64]*domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	views := make([]dto.PlaceView, 0, len(places))
	for _, p := range places {
		vis := domain.ComputeVisibility(p, viewer)
		if !vis.Visible {
			continue
		}
		views = append(views, buildPlaceView(p, byID[p.CategoryID], vis))
	}

	return &dto.DirectoryResponse{
		Categories: categories,
		Places:     views,
		Total:      len(views),
	}, nil
}

// GetPlace loads one place for the edit screen. Places the viewer may
// not see report not-found rather than forbidden.
func (uc *DirectoryUseCase) GetPlace(ctx context.Context, viewer domain.Viewer, id uuid.UUID) (*dto.PlaceView, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vis := domain.ComputeVisibility(place, viewer)
	if !vis.Visible {
		return nil, errors.ErrPlaceNotFound
	}

	category, err := uc.categoryRepo.GetByID(ctx, place.CategoryID)
	if err != nil {
		uc.logger.Error("Failed to load category for place",
			zap.Int64("category_id", place.CategoryID),
			zap.Error(err),
		)
		return nil, err
	}

	view := buildPlaceView(place, category, vis)
	return &view, nil
}

// CreatePlace validates the form, resolves the category and persists a
// new place owned by the viewer. Validation failures reject the request
// before any store call; a category created for a save that later fails
// is left behind on purpose (categories are cheap, shared and never
// deleted).
func (uc *DirectoryUseCase) CreatePlace(
	ctx context.Context,
	viewer domain.Viewer,
	req dto.SavePlaceRequest,
) (*dto.PlaceView, error) {
	if !viewer.Authenticated() {
		return nil, errors.ErrUnauthorized
	}

	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	categoryID, err := uc.ResolveCategory(ctx, req.CategoryName)
	if err != nil {
		return nil, err
	}

	place := &domain.Place{
		ID:            uuid.New(),
		CategoryID:    categoryID,
		Name:          strings.TrimSpace(req.Name),
		Address:       optional(req.Address),
		ContactNumber: optional(req.ContactNumber),
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CreatedBy:     viewer.UserID,
	}

	if err := uc.placeRepo.Insert(ctx, place); err != nil {
		uc.logger.Error("Failed to insert place", zap.String("name", place.Name), zap.Error(err))
		return nil, err
	}

	return uc.GetPlace(ctx, viewer, place.ID)
}

// UpdatePlace rewrites an existing place. Only the creator (or an
// administrator) may edit; the category is re-resolved through the same
// create-if-absent rule when a category name is supplied.
func (uc *DirectoryUseCase) UpdatePlace(
	ctx context.Context,
	viewer domain.Viewer,
	id uuid.UUID,
	req dto.UpdatePlaceRequest,
) (*dto.PlaceView, error) {
	if !viewer.Authenticated() {
		return nil, errors.ErrUnauthorized
	}

	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vis := domain.ComputeVisibility(place, viewer)
	if !vis.Visible {
		return nil, errors.ErrPlaceNotFound
	}
	if !vis.Editable {
		return nil, errors.ErrNotAllowed
	}

	categoryID := place.CategoryID
	if domain.NormalizeCategoryName(req.CategoryName) != "" {
		categoryID, err = uc.ResolveCategory(ctx, req.CategoryName)
		if err != nil {
			return nil, err
		}
	}

	place.CategoryID = categoryID
	place.Name = strings.TrimSpace(req.Name)
	place.Address = optional(req.Address)
	place.ContactNumber = optional(req.ContactNumber)
	place.Latitude = req.Latitude
	place.Longitude = req.Longitude

	if err := uc.placeRepo.Update(ctx, place, mutationScope(viewer)); err != nil {
		uc.logger.Error("Failed to update place", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return uc.GetPlace(ctx, viewer, id)
}

// DeletePlace removes a place owned by the viewer.
func (uc *DirectoryUseCase) DeletePlace(ctx context.Context, viewer domain.Viewer, id uuid.UUID) error {
	if !viewer.Authenticated() {
		return errors.ErrUnauthorized
	}

	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	vis := domain.ComputeVisibility(place, viewer)
	if !vis.Visible {
		return errors.ErrPlaceNotFound
	}
	if !vis.Editable {
		return errors.ErrNotAllowed
	}

	if err := uc.placeRepo.Delete(ctx, id, mutationScope(viewer)); err != nil {
		uc.logger.Error("Failed to delete place", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	return nil
}

func (uc *DirectoryUseCase) loadCategories(ctx context.Context) ([]*domain.Category, error) {
	cached, err := uc.cacheRepo.GetCategories(ctx)
	if err != nil {
		uc.logger.Warn("Category cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load categories", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetCategories(ctx, categories, uc.categoriesTTL); err != nil {
		uc.logger.Warn("Category cache write failed", zap.Error(err))
	}

	return categories, nil
}

// validateCoordinates enforces both-or-neither plus range bounds before
// any store call.
func validateCoordinates(lat, lon *float64) error {
	if (lat == nil) != (lon == nil) {
		return errors.ErrIncompleteCoordinates
	}
	if lat != nil && !utils.ValidateCoordinates(*lat, *lon) {
		return errors.ErrInvalidCoordinates
	}
	return nil
}

// mutationScope returns the creator filter for owned mutations: admins
// mutate any row, everyone else only their own.
func mutationScope(viewer domain.Viewer) *uuid.UUID {
	if viewer.IsAdmin() {
		return nil
	}
	return viewer.UserID
}

func buildPlaceView(p *domain.Place, c *domain.Category, vis domain.Visibility) dto.PlaceView {
	view := dto.PlaceView{
		ID:            p.ID.String(),
		CategoryID:    p.CategoryID,
		CategoryName:  "Unknown",
		Name:          p.Name,
		Address:       p.Address,
		ContactNumber: p.ContactNumber,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		CanEdit:       vis.Editable,
		UpdatedAt:     p.UpdatedAt,
	}
	if c != nil {
		view.CategoryName = c.Name
		view.CategoryColor = c.Color
	}
	return view
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
