package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type SearchHandler struct {
	searchUC usecases_port.SearchPropertiesUseCasePort
}

func NewSearchHandler(searchUC usecases_port.SearchPropertiesUseCasePort) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// Search обрабатывает GET /api/v1/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()

	// Нераспознанные значения числовых параметров трактуем как незаданные,
	// а не как ошибку запроса
	filters := domain.SearchFilters{
		PropertyType: parseString(query, "propertyType"),
		Purpose:      parseString(query, "purpose"),
		City:         parseString(query, "city"),
		District:     parseString(query, "district"),
		MinPrice:     parseFloat(query, "minPrice"),
		MaxPrice:     parseFloat(query, "maxPrice"),
		MinArea:      parseFloat(query, "minArea"),
		MaxArea:      parseFloat(query, "maxArea"),
		Rooms:        parseInt(query, "rooms"),
		Floor:        parseInt(query, "floor"),
		HeatingType:  parseString(query, "heatingType"),
		Keywords:     parseString(query, "keywords"),
		SortBy:       parseString(query, "sortBy"),
		SortOrder:    parseString(query, "sortOrder"),
	}

	page := parsePageRequest(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "Search",
		"page":    page.Page,
		"limit":   page.PageSize,
		"filters": filters,
	})
	handlerLogger.Debug("Processing search request", nil)

	result, err := h.searchUC.Execute(r.Context(), filters, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Search completed", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})

	RespondWithJSON(w, http.StatusOK, toSearchResponse(result))
}
