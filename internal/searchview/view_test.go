package searchview

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerage-service/internal/core/domain"
)

// fakeSearcher фильтрует фиксированный набор объектов в памяти,
// повторяя семантику поискового use case.
type fakeSearcher struct {
	properties []domain.Property
	calls      int
	err        error
}

func (s *fakeSearcher) Execute(_ context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	page = page.Clamp()

	var matched []domain.Property
	for _, p := range s.properties {
		if filters.PropertyType != "" && p.Type != filters.PropertyType {
			continue
		}
		if filters.City != "" && p.City != filters.City {
			continue
		}
		if filters.MinPrice != nil && (p.Price == nil || *p.Price < *filters.MinPrice) {
			continue
		}
		if filters.MaxPrice != nil && (p.Price == nil || *p.Price > *filters.MaxPrice) {
			continue
		}
		matched = append(matched, p)
	}

	if filters.SortBy == domain.SortByPrice && filters.SortOrder == domain.SortOrderAsc {
		sort.Slice(matched, func(i, j int) bool { return *matched[i].Price < *matched[j].Price })
	}

	total := len(matched)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.PageSize
	if end > total {
		end = total
	}

	return &domain.SearchResultPage{
		Properties: matched[start:end],
		TotalCount: total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: domain.TotalPages(total, page.PageSize),
	}, nil
}

// vilniusFixture — 12 квартир в Вильнюсе с ценами от 50000 до 300000.
func vilniusFixture() []domain.Property {
	prices := []float64{50000, 75000, 100000, 110000, 125000, 150000, 175000, 200000, 225000, 250000, 275000, 300000}
	properties := make([]domain.Property, len(prices))
	for i, price := range prices {
		p := price
		properties[i] = domain.Property{
			ID:        uuid.New(),
			City:      "Vilnius",
			Type:      domain.PropertyTypeApartment,
			Purpose:   domain.PurposeSale,
			Status:    domain.PropertyStatusActive,
			Price:     &p,
			CreatedAt: time.Now().UTC(),
		}
	}
	return properties
}

func TestViewStartsIdle(t *testing.T) {
	v := NewView(&fakeSearcher{})
	assert.Equal(t, StateIdle, v.State())
	assert.Nil(t, v.Result())
}

func TestViewPriceRangeScenario(t *testing.T) {
	searcher := &fakeSearcher{properties: vilniusFixture()}
	v := NewView(searcher)

	minPrice, maxPrice := 100000.0, 200000.0
	filters := domain.SearchFilters{
		PropertyType: domain.PropertyTypeApartment,
		City:         "Vilnius",
		MinPrice:     &minPrice,
		MaxPrice:     &maxPrice,
		SortBy:       domain.SortByPrice,
		SortOrder:    domain.SortOrderAsc,
	}

	applied := v.Search(context.Background(), filters, domain.PageRequest{Page: 1, PageSize: 9})
	require.True(t, applied)
	require.Equal(t, StatePopulated, v.State())

	result := v.Result()
	require.NotNil(t, result)

	// Из 12 объектов в [100000, 200000] попадают 6
	assert.Equal(t, 6, result.TotalCount, "totalCount must be the full matching set size")
	assert.LessOrEqual(t, len(result.Properties), 9)

	for i, p := range result.Properties {
		require.NotNil(t, p.Price)
		assert.GreaterOrEqual(t, *p.Price, minPrice)
		assert.LessOrEqual(t, *p.Price, maxPrice)
		if i > 0 {
			assert.LessOrEqual(t, *result.Properties[i-1].Price, *p.Price, "results must be ascending by price")
		}
	}
}

func TestViewEmptyAndFailedStates(t *testing.T) {
	searcher := &fakeSearcher{properties: vilniusFixture()}
	v := NewView(searcher)

	// Фильтр, который ничего не находит
	impossible := 1.0
	v.Search(context.Background(), domain.SearchFilters{MaxPrice: &impossible}, domain.PageRequest{})
	assert.Equal(t, StateEmpty, v.State())
	assert.NoError(t, v.Err())

	// Ошибка хранилища - отдельное состояние, не пустая выдача
	searcher.err = errors.New("connection refused")
	v.Search(context.Background(), domain.SearchFilters{}, domain.PageRequest{})
	assert.Equal(t, StateFailed, v.State())
	assert.Error(t, v.Err())

	// После ошибки новый поиск снова работает
	searcher.err = nil
	v.Search(context.Background(), domain.SearchFilters{}, domain.PageRequest{})
	assert.Equal(t, StatePopulated, v.State())
	assert.NoError(t, v.Err())
}

func TestViewDiscardsStaleResponse(t *testing.T) {
	v := NewView(&fakeSearcher{})

	cheap := 100000.0
	expensive := 200000.0

	// Два запроса уходят до того, как первый успел завершиться
	seq1 := v.Begin(domain.SearchFilters{MaxPrice: &cheap}, domain.PageRequest{})
	seq2 := v.Begin(domain.SearchFilters{MaxPrice: &expensive}, domain.PageRequest{})

	// Ответы приходят в обратном порядке
	laterResult := &domain.SearchResultPage{TotalCount: 7, Page: 1, PageSize: 10, TotalPages: 1}
	require.True(t, v.Resolve(seq2, laterResult, nil))

	earlierResult := &domain.SearchResultPage{TotalCount: 3, Page: 1, PageSize: 10, TotalPages: 1}
	assert.False(t, v.Resolve(seq1, earlierResult, nil), "stale response must be discarded")

	// Видимая выдача соответствует последнему выданному запросу
	state, filters, _, result, err := v.Snapshot()
	assert.Equal(t, StatePopulated, state)
	assert.Equal(t, &expensive, filters.MaxPrice)
	assert.Equal(t, 7, result.TotalCount)
	assert.NoError(t, err)
}

func TestViewStaleErrorDoesNotClobberResult(t *testing.T) {
	v := NewView(&fakeSearcher{})

	seq1 := v.Begin(domain.SearchFilters{}, domain.PageRequest{})
	seq2 := v.Begin(domain.SearchFilters{City: "Kaunas"}, domain.PageRequest{})

	require.True(t, v.Resolve(seq2, &domain.SearchResultPage{TotalCount: 2}, nil))

	// Опоздавшая ошибка первого запроса не должна портить состояние
	assert.False(t, v.Resolve(seq1, nil, errors.New("timeout")))
	assert.Equal(t, StatePopulated, v.State())
	assert.NoError(t, v.Err())
}

func TestViewSequentialSearchesLastWins(t *testing.T) {
	searcher := &fakeSearcher{properties: vilniusFixture()}
	v := NewView(searcher)

	first := 75000.0
	second := 250000.0

	v.Search(context.Background(), domain.SearchFilters{MaxPrice: &first}, domain.PageRequest{})
	v.Search(context.Background(), domain.SearchFilters{MaxPrice: &second}, domain.PageRequest{})

	result := v.Result()
	require.NotNil(t, result)
	assert.Equal(t, 10, result.TotalCount)
	assert.Equal(t, 2, searcher.calls)
}
