package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerage-service/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestApplyFiltersEmpty(t *testing.T) {
	where, order, args := applyFilters(domain.SearchFilters{})

	assert.Empty(t, where, "empty filters must not produce a WHERE clause")
	assert.Empty(t, args)
	assert.Equal(t, "ORDER BY p.created_at DESC, p.id ASC", order)
}

func TestApplyFiltersAllFields(t *testing.T) {
	filters := domain.SearchFilters{
		PropertyType: "apartment",
		Purpose:      "sale",
		City:         "Vilnius",
		District:     "Antakalnis",
		MinPrice:     floatPtr(100000),
		MaxPrice:     floatPtr(200000),
		MinArea:      floatPtr(40),
		MaxArea:      floatPtr(90),
		Rooms:        intPtr(2),
		Floor:        intPtr(3),
		HeatingType:  "central",
		Keywords:     "balcony view",
	}

	where, _, args := applyFilters(filters)

	require.Contains(t, where, "WHERE ")
	assert.Contains(t, where, "p.type = $1")
	assert.Contains(t, where, "p.purpose = $2")
	assert.Contains(t, where, "p.heating_type = $3")
	assert.Contains(t, where, "p.city ILIKE $4")
	assert.Contains(t, where, "p.district ILIKE $5")
	assert.Contains(t, where, "p.price >= $6")
	assert.Contains(t, where, "p.price <= $7")
	assert.Contains(t, where, "p.area_m2 >= $8")
	assert.Contains(t, where, "p.area_m2 <= $9")
	assert.Contains(t, where, "p.num_rooms = $10")
	assert.Contains(t, where, "p.floor_number = $11")
	assert.Contains(t, where, "p.fts @@ to_tsquery($12)")

	require.Len(t, args, 12)
	assert.Equal(t, "%Vilnius%", args[3])
	assert.Equal(t, "%Antakalnis%", args[4])
	assert.Equal(t, "balcony & view", args[11])
}

func TestApplyFiltersPriceRangeOnly(t *testing.T) {
	where, _, args := applyFilters(domain.SearchFilters{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(200000),
	})

	assert.Equal(t, "WHERE p.price >= $1 AND p.price <= $2", where)
	assert.Equal(t, []interface{}{100000.0, 200000.0}, args)
}

func TestApplyFiltersWhitespaceKeywords(t *testing.T) {
	// Только пробельный текст эквивалентен отсутствию keywords
	where, _, args := applyFilters(domain.SearchFilters{Keywords: "   \t\n  "})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildTSQuery(t *testing.T) {
	assert.Equal(t, "", buildTSQuery(""))
	assert.Equal(t, "", buildTSQuery("   "))
	assert.Equal(t, "garden", buildTSQuery("garden"))
	assert.Equal(t, "quiet & garden & area", buildTSQuery("  quiet   garden\tarea "))
}

func TestBuildOrderClause(t *testing.T) {
	assert.Equal(t, "ORDER BY p.price ASC, p.id ASC", buildOrderClause("price", "asc"))
	assert.Equal(t, "ORDER BY p.price DESC, p.id ASC", buildOrderClause("price", "desc"))
	assert.Equal(t, "ORDER BY p.area_m2 ASC, p.id ASC", buildOrderClause("area", "asc"))

	// Неизвестный ключ сортировки сваливается в created_at DESC
	assert.Equal(t, "ORDER BY p.created_at DESC, p.id ASC", buildOrderClause("price; DROP TABLE", ""))
	assert.Equal(t, "ORDER BY p.created_at DESC, p.id ASC", buildOrderClause("", ""))
}

func TestApplyFiltersDeterministic(t *testing.T) {
	filters := domain.SearchFilters{
		City:     "Kaunas",
		MinPrice: floatPtr(50000),
		Keywords: "garage",
	}

	where1, order1, args1 := applyFilters(filters)
	where2, order2, args2 := applyFilters(filters)

	assert.Equal(t, where1, where2)
	assert.Equal(t, order1, order2)
	assert.Equal(t, args1, args2)
}
