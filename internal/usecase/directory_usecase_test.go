package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/pkg/errors"
	"github.com/safedumaguide/api/internal/usecase"
	"github.com/safedumaguide/api/internal/usecase/dto"
)

func newDirectoryUC(
	categoryRepo *MockCategoryRepository,
	placeRepo *MockPlaceRepository,
	cacheRepo *MockCacheRepository,
) *usecase.DirectoryUseCase {
	return usecase.NewDirectoryUseCase(categoryRepo, placeRepo, cacheRepo, zap.NewNop(), time.Minute)
}

func TestDirectoryUseCase_ResolveCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("equivalent raw names resolve to the same id without writes", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		existing := []*domain.Category{
			{ID: 1, Name: "Police Stations", NameNormalized: "police stations"},
			{ID: 2, Name: "Hospitals", NameNormalized: "hospitals"},
		}
		mockCategory.On("ListAll", ctx).Return(existing, nil)

		for _, raw := range []string{"Police Stations", "  police   STATIONS ", "police stations"} {
			id, err := uc.ResolveCategory(ctx, raw)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), id)
		}

		mockCategory.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown name creates the category and invalidates the cache", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockCategory.On("ListAll", ctx).Return([]*domain.Category{}, nil)
		mockCategory.On("InsertIfAbsent", ctx, "Fire Stations", "fire stations").
			Return(&domain.Category{ID: 7, Name: "Fire Stations", NameNormalized: "fire stations"}, nil)
		mockCache.On("InvalidateCategories", ctx).Return(nil)

		id, err := uc.ResolveCategory(ctx, "  Fire   Stations ")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		mockCategory.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("concurrent first writers converge on the surviving row", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		// Another request created the row between our list and insert; the
		// store hands back the winner instead of a duplicate.
		mockCategory.On("ListAll", ctx).Return([]*domain.Category{}, nil)
		mockCategory.On("InsertIfAbsent", ctx, "Evacuation Centers", "evacuation centers").
			Return(&domain.Category{ID: 3, Name: "Evacuation Centers", NameNormalized: "evacuation centers"}, nil)
		mockCache.On("InvalidateCategories", ctx).Return(nil)

		id, err := uc.ResolveCategory(ctx, "Evacuation Centers")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("blank name is rejected before any store call", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		_, err := uc.ResolveCategory(ctx, "   ")

		assert.Equal(t, errors.ErrEmptyCategoryName, err)
		mockCategory.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestDirectoryUseCase_ListDirectory(t *testing.T) {
	ctx := context.Background()

	ownerID := uuid.New()
	strangerID := uuid.New()

	categories := []*domain.Category{
		{ID: 1, Name: "Hospitals", NameNormalized: "hospitals"},
	}

	publicPlace := &domain.Place{ID: uuid.New(), CategoryID: 1, Name: "Provincial Hospital"}
	ownedPlace := &domain.Place{ID: uuid.New(), CategoryID: 1, Name: "My Clinic", CreatedBy: ptrUUID(ownerID)}
	foreignPlace := &domain.Place{ID: uuid.New(), CategoryID: 1, Name: "Their Clinic", CreatedBy: ptrUUID(strangerID)}

	allPlaces := []*domain.Place{publicPlace, ownedPlace, foreignPlace}

	setup := func() (*usecase.DirectoryUseCase, *MockPlaceRepository) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetCategories", ctx).Return(nil, nil)
		mockCategory.On("ListAll", ctx).Return(categories, nil)
		mockCache.On("SetCategories", ctx, categories, time.Minute).Return(nil)
		mockPlace.On("ListAll", ctx, []int64(nil)).Return(allPlaces, nil)

		return newDirectoryUC(mockCategory, mockPlace, mockCache), mockPlace
	}

	t.Run("anonymous viewer sees only public places and cannot edit", func(t *testing.T) {
		uc, _ := setup()
		viewer := domain.Viewer{Role: domain.RoleUser}

		resp, err := uc.ListDirectory(ctx, viewer, nil)

		assert.NoError(t, err)
		assert.Len(t, resp.Places, 1)
		assert.Equal(t, "Provincial Hospital", resp.Places[0].Name)
		assert.False(t, resp.Places[0].CanEdit)
		assert.Equal(t, "Hospitals", resp.Places[0].CategoryName)
	})

	t.Run("owner sees public plus own, edits only own", func(t *testing.T) {
		uc, _ := setup()
		viewer := domain.Viewer{UserID: ptrUUID(ownerID), Role: domain.RoleUser}

		resp, err := uc.ListDirectory(ctx, viewer, nil)

		assert.NoError(t, err)
		assert.Len(t, resp.Places, 2)

		byName := map[string]dto.PlaceView{}
		for _, v := range resp.Places {
			byName[v.Name] = v
		}
		assert.False(t, byName["Provincial Hospital"].CanEdit)
		assert.True(t, byName["My Clinic"].CanEdit)
		assert.NotContains(t, byName, "Their Clinic")
	})

	t.Run("admin sees and edits everything", func(t *testing.T) {
		uc, _ := setup()
		viewer := domain.Viewer{UserID: ptrUUID(uuid.New()), Role: domain.RoleAdmin}

		resp, err := uc.ListDirectory(ctx, viewer, nil)

		assert.NoError(t, err)
		assert.Len(t, resp.Places, 3)
		for _, v := range resp.Places {
			assert.True(t, v.CanEdit)
		}
	})
}

func TestDirectoryUseCase_CreatePlace(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	viewer := domain.Viewer{UserID: ptrUUID(userID), Role: domain.RoleUser}

	t.Run("invalid coordinates reject before any store call", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		req := dto.SavePlaceRequest{
			Name:         "Somewhere",
			CategoryName: "Hospitals",
			Latitude:     ptrFloat64(123.0),
			Longitude:    ptrFloat64(123.3),
		}

		_, err := uc.CreatePlace(ctx, viewer, req)

		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		mockCategory.AssertNotCalled(t, "ListAll", mock.Anything)
		mockCategory.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything, mock.Anything)
		mockPlace.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("half a coordinate pair is rejected", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		req := dto.SavePlaceRequest{
			Name:         "Somewhere",
			CategoryName: "Hospitals",
			Latitude:     ptrFloat64(9.3068),
		}

		_, err := uc.CreatePlace(ctx, viewer, req)

		assert.Equal(t, errors.ErrIncompleteCoordinates, err)
		mockPlace.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated viewer cannot create", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		_, err := uc.CreatePlace(ctx, domain.Viewer{Role: domain.RoleUser}, dto.SavePlaceRequest{
			Name:         "Somewhere",
			CategoryName: "Hospitals",
		})

		assert.Equal(t, errors.ErrUnauthorized, err)
	})

	t.Run("resolves category then persists and reloads the place", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		hospitals := &domain.Category{ID: 1, Name: "Hospitals", NameNormalized: "hospitals"}

		mockCategory.On("ListAll", ctx).Return([]*domain.Category{hospitals}, nil)
		mockCategory.On("GetByID", ctx, int64(1)).Return(hospitals, nil)

		var savedID uuid.UUID
		mockPlace.On("Insert", ctx, mock.MatchedBy(func(p *domain.Place) bool {
			savedID = p.ID
			return p.CategoryID == 1 &&
				p.Name == "City Health Office" &&
				p.CreatedBy != nil && *p.CreatedBy == userID
		})).Return(nil)
		mockPlace.On("GetByID", ctx, mock.MatchedBy(func(id uuid.UUID) bool {
			return id == savedID
		})).Return(&domain.Place{
			ID:         savedID,
			CategoryID: 1,
			Name:       "City Health Office",
			CreatedBy:  ptrUUID(userID),
		}, nil)

		req := dto.SavePlaceRequest{
			Name:         "  City Health Office ",
			CategoryName: "hospitals",
			Latitude:     ptrFloat64(9.3068),
			Longitude:    ptrFloat64(123.3054),
		}

		view, err := uc.CreatePlace(ctx, viewer, req)

		assert.NoError(t, err)
		assert.Equal(t, "City Health Office", view.Name)
		assert.Equal(t, int64(1), view.CategoryID)
		assert.True(t, view.CanEdit)
		mockPlace.AssertExpectations(t)
	})
}

func TestDirectoryUseCase_UpdatePlace(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()

	placeID := uuid.New()
	ownedPlace := func() *domain.Place {
		return &domain.Place{
			ID:         placeID,
			CategoryID: 1,
			Name:       "My Clinic",
			CreatedBy:  ptrUUID(ownerID),
		}
	}

	req := dto.UpdatePlaceRequest{Name: "My Clinic Renamed"}

	t.Run("non-owner gets not found, not forbidden", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).Return(ownedPlace(), nil)

		viewer := domain.Viewer{UserID: ptrUUID(strangerID), Role: domain.RoleUser}
		_, err := uc.UpdatePlace(ctx, viewer, placeID, req)

		assert.Equal(t, errors.ErrPlaceNotFound, err)
		mockPlace.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner update is scoped to the owner's rows", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).Return(ownedPlace(), nil)
		mockPlace.On("Update", ctx, mock.MatchedBy(func(p *domain.Place) bool {
			return p.ID == placeID && p.Name == "My Clinic Renamed"
		}), mock.MatchedBy(func(creator *uuid.UUID) bool {
			return creator != nil && *creator == ownerID
		})).Return(nil)
		mockCategory.On("GetByID", ctx, int64(1)).
			Return(&domain.Category{ID: 1, Name: "Hospitals"}, nil)

		viewer := domain.Viewer{UserID: ptrUUID(ownerID), Role: domain.RoleUser}
		view, err := uc.UpdatePlace(ctx, viewer, placeID, req)

		assert.NoError(t, err)
		assert.Equal(t, "My Clinic Renamed", view.Name)
		mockPlace.AssertExpectations(t)
	})

	t.Run("admin update lifts the creator scope", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).Return(ownedPlace(), nil)
		mockPlace.On("Update", ctx, mock.Anything, (*uuid.UUID)(nil)).Return(nil)
		mockCategory.On("GetByID", ctx, int64(1)).
			Return(&domain.Category{ID: 1, Name: "Hospitals"}, nil)

		viewer := domain.Viewer{UserID: ptrUUID(uuid.New()), Role: domain.RoleAdmin}
		_, err := uc.UpdatePlace(ctx, viewer, placeID, req)

		assert.NoError(t, err)
		mockPlace.AssertExpectations(t)
	})

	t.Run("empty category name keeps the current category", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).Return(ownedPlace(), nil)
		mockPlace.On("Update", ctx, mock.MatchedBy(func(p *domain.Place) bool {
			return p.CategoryID == 1
		}), mock.Anything).Return(nil)
		mockCategory.On("GetByID", ctx, int64(1)).
			Return(&domain.Category{ID: 1, Name: "Hospitals"}, nil)

		viewer := domain.Viewer{UserID: ptrUUID(ownerID), Role: domain.RoleUser}
		_, err := uc.UpdatePlace(ctx, viewer, placeID, dto.UpdatePlaceRequest{Name: "My Clinic", CategoryName: "  "})

		assert.NoError(t, err)
		mockCategory.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestDirectoryUseCase_DeletePlace(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	placeID := uuid.New()

	place := &domain.Place{ID: placeID, CategoryID: 1, Name: "My Clinic", CreatedBy: ptrUUID(ownerID)}

	t.Run("owner deletes own place", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).Return(place, nil)
		mockPlace.On("Delete", ctx, placeID, mock.MatchedBy(func(creator *uuid.UUID) bool {
			return creator != nil && *creator == ownerID
		})).Return(nil)

		viewer := domain.Viewer{UserID: ptrUUID(ownerID), Role: domain.RoleUser}
		err := uc.DeletePlace(ctx, viewer, placeID)

		assert.NoError(t, err)
		mockPlace.AssertExpectations(t)
	})

	t.Run("public place cannot be deleted by a regular user", func(t *testing.T) {
		mockCategory := &MockCategoryRepository{}
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := newDirectoryUC(mockCategory, mockPlace, mockCache)

		mockPlace.On("GetByID", ctx, placeID).
			Return(&domain.Place{ID: placeID, CategoryID: 1, Name: "Public"}, nil)

		viewer := domain.Viewer{UserID: ptrUUID(ownerID), Role: domain.RoleUser}
		err := uc.DeletePlace(ctx, viewer, placeID)

		assert.Equal(t, errors.ErrNotAllowed, err)
		mockPlace.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

// In-memory fakes for exercising the full save-then-list flow without a
// database.

type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []*domain.Category
}

func (f *fakeCategoryRepo) ListAll(ctx context.Context) ([]*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Category(nil), f.rows...), nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.ErrCategoryReadFailed
}

func (f *fakeCategoryRepo) InsertIfAbsent(ctx context.Context, displayName, normalized string) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.NameNormalized == normalized {
			return c, nil
		}
	}
	f.nextID++
	c := &domain.Category{ID: f.nextID, Name: displayName, NameNormalized: normalized}
	f.rows = append(f.rows, c)
	return c, nil
}

type fakePlaceRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*domain.Place
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{rows: map[uuid.UUID]*domain.Place{}}
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, errors.ErrPlaceNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlaceRepo) ListAll(ctx context.Context, categoryIDs []int64) ([]*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Place
	for _, p := range f.rows {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePlaceRepo) Insert(ctx context.Context, place *domain.Place) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *place
	f.rows[place.ID] = &cp
	return nil
}

func (f *fakePlaceRepo) Update(ctx context.Context, place *domain.Place, creator *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.rows[place.ID]
	if !ok || (creator != nil && (existing.CreatedBy == nil || *existing.CreatedBy != *creator)) {
		return errors.ErrPlaceNotFound
	}
	cp := *place
	f.rows[place.ID] = &cp
	return nil
}

func (f *fakePlaceRepo) Delete(ctx context.Context, id uuid.UUID, creator *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.rows[id]
	if !ok || (creator != nil && (existing.CreatedBy == nil || *existing.CreatedBy != *creator)) {
		return errors.ErrPlaceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeCache struct{}

func (fakeCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (fakeCache) Delete(ctx context.Context, key string) error       { return nil }
func (fakeCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
func (fakeCache) GetContacts(ctx context.Context) ([]*domain.EmergencyContact, error) {
	return nil, nil
}
func (fakeCache) SetContacts(ctx context.Context, contacts []*domain.EmergencyContact, ttl time.Duration) error {
	return nil
}
func (fakeCache) GetTips(ctx context.Context) ([]*domain.SafetyTip, error) { return nil, nil }
func (fakeCache) SetTips(ctx context.Context, tips []*domain.SafetyTip, ttl time.Duration) error {
	return nil
}
func (fakeCache) GetCategories(ctx context.Context) ([]*domain.Category, error) { return nil, nil }
func (fakeCache) SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error {
	return nil
}
func (fakeCache) InvalidateCategories(ctx context.Context) error { return nil }

// Save-then-list: a place saved under a never-seen category shows up in
// the next directory load under exactly one category row, visible to its
// creator with the edit flag set.
func TestDirectoryUseCase_SaveThenList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	viewer := domain.Viewer{UserID: ptrUUID(userID), Role: domain.RoleUser}

	uc := usecase.NewDirectoryUseCase(
		&fakeCategoryRepo{}, newFakePlaceRepo(), fakeCache{}, zap.NewNop(), time.Minute,
	)

	first, err := uc.CreatePlace(ctx, viewer, dto.SavePlaceRequest{
		Name:         "City Police Station",
		CategoryName: "Police Stations",
	})
	assert.NoError(t, err)

	// A second save with an equivalent raw name reuses the category.
	second, err := uc.CreatePlace(ctx, viewer, dto.SavePlaceRequest{
		Name:         "Highway Patrol Outpost",
		CategoryName: "  police   STATIONS ",
	})
	assert.NoError(t, err)
	assert.Equal(t, first.CategoryID, second.CategoryID)

	resp, err := uc.ListDirectory(ctx, viewer, nil)
	assert.NoError(t, err)
	assert.Len(t, resp.Categories, 1)
	assert.Equal(t, "Police Stations", resp.Categories[0].Name)
	assert.Len(t, resp.Places, 2)
	for _, v := range resp.Places {
		assert.Equal(t, first.CategoryID, v.CategoryID)
		assert.True(t, v.CanEdit)
	}
}
