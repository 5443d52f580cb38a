package searchview

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerage-service/internal/core/domain"
)

// fakeSavedSearchBackend эмулирует серверную сторону saved-search операций.
type fakeSavedSearchBackend struct {
	searches  map[uuid.UUID]domain.SavedSearch
	deleteErr error
	searcher  *fakeSearcher
}

func newFakeSavedSearchBackend(searcher *fakeSearcher) *fakeSavedSearchBackend {
	return &fakeSavedSearchBackend{
		searches: make(map[uuid.UUID]domain.SavedSearch),
		searcher: searcher,
	}
}

func (b *fakeSavedSearchBackend) add(userID uuid.UUID, name string, filters domain.SearchFilters) domain.SavedSearch {
	s := domain.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Filters:   filters,
		CreatedAt: time.Now().UTC(),
	}
	b.searches[s.ID] = s
	return s
}

// Execute (list)
func (b *fakeSavedSearchBackend) Execute(_ context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	var out []domain.SavedSearch
	for _, s := range b.searches {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeApplyBackend struct{ backend *fakeSavedSearchBackend }

func (b *fakeApplyBackend) Execute(ctx context.Context, userID, searchID uuid.UUID, pageSize int) (*domain.SearchResultPage, domain.SearchFilters, error) {
	s, ok := b.backend.searches[searchID]
	if !ok || s.UserID != userID {
		return nil, domain.SearchFilters{}, domain.ErrNotFound
	}
	page := domain.PageRequest{Page: 1, PageSize: pageSize}.Clamp()
	result, err := b.backend.searcher.Execute(ctx, s.Filters, page)
	if err != nil {
		return nil, domain.SearchFilters{}, err
	}
	return result, s.Filters, nil
}

type fakeDeleteBackend struct{ backend *fakeSavedSearchBackend }

func (b *fakeDeleteBackend) Execute(_ context.Context, userID, searchID uuid.UUID) error {
	if b.backend.deleteErr != nil {
		return b.backend.deleteErr
	}
	s, ok := b.backend.searches[searchID]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	delete(b.backend.searches, searchID)
	return nil
}

func newTestSavedList(t *testing.T) (*SavedList, *fakeSavedSearchBackend, uuid.UUID) {
	t.Helper()
	searcher := &fakeSearcher{properties: vilniusFixture()}
	backend := newFakeSavedSearchBackend(searcher)
	userID := uuid.New()
	view := NewView(searcher)
	list := NewSavedList(view, userID, backend, &fakeApplyBackend{backend}, &fakeDeleteBackend{backend})
	return list, backend, userID
}

func TestSavedListApplyDrivesView(t *testing.T) {
	list, backend, userID := newTestSavedList(t)

	maxPrice := 125000.0
	saved := backend.add(userID, "cheap flats", domain.SearchFilters{City: "Vilnius", MaxPrice: &maxPrice})
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Apply(context.Background(), saved.ID, 9))

	state, filters, page, result, err := list.view.Snapshot()
	assert.Equal(t, StatePopulated, state)
	assert.Equal(t, saved.Filters, filters)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 9, page.PageSize)
	require.NotNil(t, result)
	assert.Equal(t, 5, result.TotalCount)
	assert.NoError(t, err)
}

func TestSavedListOptimisticDeleteCommit(t *testing.T) {
	list, backend, userID := newTestSavedList(t)

	saved := backend.add(userID, "doomed", domain.SearchFilters{})
	require.NoError(t, list.Refresh(context.Background()))
	require.Len(t, list.Items(), 1)

	status, err := list.Delete(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, DeleteCommitted, status)
	assert.Empty(t, list.Items())
	assert.Empty(t, backend.searches)
}

func TestSavedListOptimisticDeleteRollback(t *testing.T) {
	list, backend, userID := newTestSavedList(t)

	saved := backend.add(userID, "survivor", domain.SearchFilters{City: "Vilnius"})
	require.NoError(t, list.Refresh(context.Background()))

	backend.deleteErr = assert.AnError

	status, err := list.Delete(context.Background(), saved.ID)
	require.Error(t, err)
	assert.Equal(t, DeleteRolledBack, status)

	// Откат восстанавливает список в состояние до удаления
	require.Len(t, list.Items(), 1)
	assert.Equal(t, saved.ID, list.Items()[0].ID)
	assert.Len(t, backend.searches, 1)
}

func TestSavedListDeletePhases(t *testing.T) {
	list, backend, userID := newTestSavedList(t)

	saved := backend.add(userID, "phased", domain.SearchFilters{})
	require.NoError(t, list.Refresh(context.Background()))

	pending, err := list.BeginDelete(saved.ID)
	require.NoError(t, err)

	// Элемент исчезает локально сразу, до завершения удаленного вызова
	assert.Empty(t, list.Items())
	assert.Equal(t, DeleteApplying, pending.Status())

	pending.Commit()
	assert.Equal(t, DeleteCommitted, pending.Status())

	// Повторные переходы из терминального состояния игнорируются
	pending.Rollback()
	assert.Equal(t, DeleteCommitted, pending.Status())
	assert.Empty(t, list.Items())
}

func TestSavedListDeleteUnknownID(t *testing.T) {
	list, _, _ := newTestSavedList(t)

	_, err := list.BeginDelete(uuid.New())
	assert.Error(t, err)
}
