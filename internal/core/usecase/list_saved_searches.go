package usecase

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListSavedSearchesUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewListSavedSearchesUseCase(repo port.SavedSearchRepositoryPort) *ListSavedSearchesUseCase {
	return &ListSavedSearchesUseCase{repo: repo}
}

func (uc *ListSavedSearchesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListSavedSearches",
		"user_id":  userID,
	})

	ucLogger.Debug("Use case started", nil)

	searches, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(searches)})
	return searches, nil
}
