package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneTrimsStrings(t *testing.T) {
	f := SearchFilters{
		PropertyType: "  apartment ",
		City:         " Vilnius",
		District:     "   ",
		Keywords:     "  quiet garden  ",
	}

	pruned := f.Prune()

	assert.Equal(t, "apartment", pruned.PropertyType)
	assert.Equal(t, "Vilnius", pruned.City)
	assert.Equal(t, "", pruned.District)
	assert.Equal(t, "quiet garden", pruned.Keywords)
}

func TestPruneIsFixedPoint(t *testing.T) {
	f := SearchFilters{
		PropertyType: " house ",
		Purpose:      "rent",
		City:         "  Kaunas  ",
		Keywords:     " lake \t view ",
		SortBy:       SortByPrice,
		SortOrder:    SortOrderAsc,
	}

	once := f.Prune()
	twice := once.Prune()
	assert.Equal(t, once, twice)
}

func TestPrunedSnapshotRoundTrip(t *testing.T) {
	// Снапшот после сериализации и восстановления должен совпадать со
	// своей же очищенной формой
	minPrice := 100000.0
	f := SearchFilters{
		PropertyType: "apartment",
		City:         " Vilnius ",
		MinPrice:     &minPrice,
		District:     "",
	}

	pruned := f.Prune()

	body, err := json.Marshal(pruned)
	require.NoError(t, err)

	var restored SearchFilters
	require.NoError(t, json.Unmarshal(body, &restored))

	assert.Equal(t, pruned, restored)
	assert.Equal(t, restored, restored.Prune())

	// Пустые поля исчезают из сериализованной формы
	assert.NotContains(t, string(body), "district")
	assert.NotContains(t, string(body), "maxPrice")
}

func TestNormalizeSortDefaults(t *testing.T) {
	f := SearchFilters{SortBy: "bogus", SortOrder: "sideways"}
	f.Normalize()
	assert.Equal(t, SortByCreatedAt, f.SortBy)
	assert.Equal(t, SortOrderDesc, f.SortOrder)

	f = SearchFilters{SortBy: SortByArea, SortOrder: SortOrderAsc}
	f.Normalize()
	assert.Equal(t, SortByArea, f.SortBy)
	assert.Equal(t, SortOrderAsc, f.SortOrder)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, SearchFilters{}.IsEmpty())
	assert.True(t, SearchFilters{SortBy: SortByPrice, SortOrder: SortOrderAsc}.IsEmpty())

	rooms := 2
	assert.False(t, SearchFilters{Rooms: &rooms}.IsEmpty())
	assert.False(t, SearchFilters{City: "Vilnius"}.IsEmpty())
}

func TestPageRequestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"defaults", PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", PageRequest{Page: -5, PageSize: 20}, PageRequest{Page: 1, PageSize: 20}},
		{"zero page", PageRequest{Page: 0, PageSize: 10}, PageRequest{Page: 1, PageSize: 10}},
		{"oversized limit", PageRequest{Page: 2, PageSize: 1000}, PageRequest{Page: 2, PageSize: DefaultPageSize}},
		{"valid", PageRequest{Page: 3, PageSize: 9}, PageRequest{Page: 3, PageSize: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 18, PageRequest{Page: 3, PageSize: 9}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 9))
	assert.Equal(t, 0, TotalPages(-3, 10))
	assert.Equal(t, 0, TotalPages(10, 0))
}
