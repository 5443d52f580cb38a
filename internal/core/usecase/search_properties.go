package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type SearchPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewSearchPropertiesUseCase(storage port.PropertyStoragePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{storage: storage}
}

// Execute нормализует фильтры и окно пагинации и выполняет ровно один поиск.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SearchProperties",
		"filters":   filters,
		"page":      page.Page,
		"page_size": page.PageSize,
	})

	ucLogger.Info("Use case started", nil)

	filters.Normalize()
	page = page.Clamp()

	result, err := uc.storage.Search(ctx, filters, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Properties),
	})

	return result, nil
}
