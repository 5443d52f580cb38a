package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerage-service/internal/core/domain"
)

// fakeSavedSearchRepo — репозиторий в памяти с такой же семантикой
// владения, как у postgres-адаптера.
type fakeSavedSearchRepo struct {
	searches  map[uuid.UUID]*domain.SavedSearch
	createErr error
}

func newFakeSavedSearchRepo() *fakeSavedSearchRepo {
	return &fakeSavedSearchRepo{searches: make(map[uuid.UUID]*domain.SavedSearch)}
}

func (r *fakeSavedSearchRepo) Create(_ context.Context, search *domain.SavedSearch) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *search
	r.searches[search.ID] = &copied
	return nil
}

func (r *fakeSavedSearchRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	var out []domain.SavedSearch
	for _, s := range r.searches {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSavedSearchRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.SavedSearch, error) {
	s, ok := r.searches[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSavedSearchRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	s, ok := r.searches[id]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.searches, id)
	return nil
}

// fakePropertyStorage записывает параметры последнего Search.
type fakePropertyStorage struct {
	lastFilters domain.SearchFilters
	lastPage    domain.PageRequest
	result      *domain.SearchResultPage
	searchErr   error
}

func (s *fakePropertyStorage) Search(_ context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error) {
	s.lastFilters = filters
	s.lastPage = page
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if s.result != nil {
		return s.result, nil
	}
	return &domain.SearchResultPage{Page: page.Page, PageSize: page.PageSize}, nil
}

func (s *fakePropertyStorage) GetByID(context.Context, uuid.UUID) (*domain.Property, error) {
	return nil, domain.ErrNotFound
}
func (s *fakePropertyStorage) Create(context.Context, *domain.Property) error { return nil }
func (s *fakePropertyStorage) Update(context.Context, *domain.Property) error { return nil }
func (s *fakePropertyStorage) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (s *fakePropertyStorage) ListByBroker(context.Context, uuid.UUID, domain.PageRequest) (*domain.SearchResultPage, error) {
	return nil, nil
}
func (s *fakePropertyStorage) CountByBroker(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

func TestSaveSearchRequiresIdentity(t *testing.T) {
	uc := NewSaveSearchUseCase(newFakeSavedSearchRepo())

	_, err := uc.Execute(context.Background(), uuid.Nil, "my search", domain.SearchFilters{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSaveSearchRejectsEmptyName(t *testing.T) {
	uc := NewSaveSearchUseCase(newFakeSavedSearchRepo())
	userID := uuid.New()

	_, err := uc.Execute(context.Background(), userID, "   ", domain.SearchFilters{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaveSearchPrunesSnapshot(t *testing.T) {
	repo := newFakeSavedSearchRepo()
	uc := NewSaveSearchUseCase(repo)
	userID := uuid.New()

	minPrice := 100000.0
	filters := domain.SearchFilters{
		PropertyType: "  apartment ",
		City:         " Vilnius ",
		MinPrice:     &minPrice,
	}

	saved, err := uc.Execute(context.Background(), userID, "  Vilnius flats  ", filters)
	require.NoError(t, err)

	assert.Equal(t, "Vilnius flats", saved.Name)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, filters.Prune(), saved.Filters)

	stored, err := repo.GetByID(context.Background(), saved.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, saved.Filters, stored.Filters)
}

func TestSaveSearchAllowsDuplicateNames(t *testing.T) {
	repo := newFakeSavedSearchRepo()
	uc := NewSaveSearchUseCase(repo)
	userID := uuid.New()

	first, err := uc.Execute(context.Background(), userID, "same name", domain.SearchFilters{City: "Vilnius"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), userID, "same name", domain.SearchFilters{City: "Vilnius"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.searches, 2)
}

func TestApplySavedSearchResetsToFirstPage(t *testing.T) {
	repo := newFakeSavedSearchRepo()
	storage := &fakePropertyStorage{}
	userID := uuid.New()

	saveUC := NewSaveSearchUseCase(repo)
	saved, err := saveUC.Execute(context.Background(), userID, "flats", domain.SearchFilters{City: "Vilnius"})
	require.NoError(t, err)

	applyUC := NewApplySavedSearchUseCase(repo, storage)
	_, filters, err := applyUC.Execute(context.Background(), userID, saved.ID, 9)
	require.NoError(t, err)

	assert.Equal(t, 1, storage.lastPage.Page, "apply must never resume mid-pagination")
	assert.Equal(t, 9, storage.lastPage.PageSize)
	assert.Equal(t, "Vilnius", storage.lastFilters.City)
	// Нормализация подставляет дефолты сортировки для исполнения
	assert.Equal(t, domain.SortByCreatedAt, storage.lastFilters.SortBy)
	assert.Equal(t, domain.SortOrderDesc, storage.lastFilters.SortOrder)
	// Наружу возвращается нетронутый снапшот
	assert.Equal(t, saved.Filters, filters)
}

func TestApplySavedSearchOfOtherUser(t *testing.T) {
	repo := newFakeSavedSearchRepo()
	storage := &fakePropertyStorage{}
	owner := uuid.New()
	stranger := uuid.New()

	saveUC := NewSaveSearchUseCase(repo)
	saved, err := saveUC.Execute(context.Background(), owner, "flats", domain.SearchFilters{})
	require.NoError(t, err)

	applyUC := NewApplySavedSearchUseCase(repo, storage)
	_, _, err = applyUC.Execute(context.Background(), stranger, saved.ID, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyThenResaveIsStable(t *testing.T) {
	// prune → apply → prune должен быть неподвижной точкой
	repo := newFakeSavedSearchRepo()
	storage := &fakePropertyStorage{}
	userID := uuid.New()

	saveUC := NewSaveSearchUseCase(repo)
	applyUC := NewApplySavedSearchUseCase(repo, storage)

	original, err := saveUC.Execute(context.Background(), userID, "first", domain.SearchFilters{
		PropertyType: " apartment ",
		City:         "Vilnius",
	})
	require.NoError(t, err)

	_, appliedFilters, err := applyUC.Execute(context.Background(), userID, original.ID, 10)
	require.NoError(t, err)

	resaved, err := saveUC.Execute(context.Background(), userID, "second", appliedFilters)
	require.NoError(t, err)

	assert.Equal(t, original.Filters, resaved.Filters)
}

func TestDeleteSavedSearchOwnership(t *testing.T) {
	repo := newFakeSavedSearchRepo()
	owner := uuid.New()
	stranger := uuid.New()

	saveUC := NewSaveSearchUseCase(repo)
	saved, err := saveUC.Execute(context.Background(), owner, "mine", domain.SearchFilters{})
	require.NoError(t, err)

	deleteUC := NewDeleteSavedSearchUseCase(repo)

	// Чужая запись неотличима от несуществующей
	err = deleteUC.Execute(context.Background(), stranger, saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ownerList, err := repo.ListByUser(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, ownerList, 1, "failed delete must leave the owner's list unchanged")

	// Владелец удаляет успешно, повторное удаление — not found
	require.NoError(t, deleteUC.Execute(context.Background(), owner, saved.ID))
	assert.ErrorIs(t, deleteUC.Execute(context.Background(), owner, saved.ID), domain.ErrNotFound)
}

func TestSearchPropertiesClampsAndNormalizes(t *testing.T) {
	storage := &fakePropertyStorage{}
	uc := NewSearchPropertiesUseCase(storage)

	_, err := uc.Execute(context.Background(), domain.SearchFilters{SortBy: "bogus"}, domain.PageRequest{Page: -2, PageSize: 5000})
	require.NoError(t, err)

	assert.Equal(t, 1, storage.lastPage.Page)
	assert.Equal(t, domain.DefaultPageSize, storage.lastPage.PageSize)
	assert.Equal(t, domain.SortByCreatedAt, storage.lastFilters.SortBy)
}
