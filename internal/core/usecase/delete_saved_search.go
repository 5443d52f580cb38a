package usecase

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
)

type DeleteSavedSearchUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewDeleteSavedSearchUseCase(repo port.SavedSearchRepositoryPort) *DeleteSavedSearchUseCase {
	return &DeleteSavedSearchUseCase{repo: repo}
}

// Execute удаляет сохраненный поиск. Владение проверяет репозиторий:
// чужая запись неотличима от несуществующей.
func (uc *DeleteSavedSearchUseCase) Execute(ctx context.Context, userID, searchID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "DeleteSavedSearch",
		"user_id":   userID,
		"search_id": searchID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, searchID, userID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
