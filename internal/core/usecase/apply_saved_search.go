package usecase

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ApplySavedSearchUseCase struct {
	searches port.SavedSearchRepositoryPort
	storage  port.PropertyStoragePort
}

func NewApplySavedSearchUseCase(searches port.SavedSearchRepositoryPort, storage port.PropertyStoragePort) *ApplySavedSearchUseCase {
	return &ApplySavedSearchUseCase{searches: searches, storage: storage}
}

// Execute восстанавливает снапшот и запускает поиск как свежевведенный.
// Сохраненный поиск никогда не продолжается с середины — всегда страница 1.
func (uc *ApplySavedSearchUseCase) Execute(ctx context.Context, userID, searchID uuid.UUID, pageSize int) (*domain.SearchResultPage, domain.SearchFilters, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ApplySavedSearch",
		"user_id":   userID,
		"search_id": searchID,
	})

	ucLogger.Info("Use case started", nil)

	saved, err := uc.searches.GetByID(ctx, searchID, userID)
	if err != nil {
		ucLogger.Error("Failed to load saved search", err, nil)
		return nil, domain.SearchFilters{}, err
	}

	filters := saved.Filters
	filters.Normalize()

	page := domain.PageRequest{Page: 1, PageSize: pageSize}.Clamp()

	result, err := uc.storage.Search(ctx, filters, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, domain.SearchFilters{}, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": result.TotalCount})
	return result, saved.Filters, nil
}
