package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerage-service/internal/core/domain"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "SavedSearchFilters/1.0.0", generateKeyFromPath("schemas/saved-search-filters/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/broken.json"))
}

func TestValidateSavedSearchFiltersAcceptsPrunedSnapshot(t *testing.T) {
	minPrice := 100000.0
	maxPrice := 200000.0
	rooms := 2
	filters := domain.SearchFilters{
		PropertyType: domain.PropertyTypeApartment,
		Purpose:      domain.PurposeSale,
		City:         "Vilnius",
		MinPrice:     &minPrice,
		MaxPrice:     &maxPrice,
		Rooms:        &rooms,
		Keywords:     "balcony view",
		SortBy:       domain.SortByPrice,
		SortOrder:    domain.SortOrderAsc,
	}

	require.NoError(t, ValidateSavedSearchFilters(filters.Prune()))
}

func TestValidateSavedSearchFiltersAcceptsEmpty(t *testing.T) {
	assert.NoError(t, ValidateSavedSearchFilters(domain.SearchFilters{}))
}

func TestValidateSavedSearchFiltersRejectsUnknownField(t *testing.T) {
	err := ValidateSavedSearchFilters(map[string]interface{}{
		"city":    "Vilnius",
		"geohash": "u9c2f",
	})
	assert.Error(t, err)
}

func TestValidateSavedSearchFiltersRejectsBadSortOrder(t *testing.T) {
	err := ValidateSavedSearchFilters(map[string]interface{}{
		"sortOrder": "sideways",
	})
	assert.Error(t, err)
}

func TestValidateSavedSearchFiltersRejectsNegativePrice(t *testing.T) {
	err := ValidateSavedSearchFilters(map[string]interface{}{
		"minPrice": -1,
	})
	assert.Error(t, err)
}

func TestValidateUnknownContract(t *testing.T) {
	err := Validate("NoSuchContract", "1.0.0", map[string]interface{}{})
	assert.Error(t, err)
}
