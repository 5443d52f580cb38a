package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/contracts"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type SaveSearchUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewSaveSearchUseCase(repo port.SavedSearchRepositoryPort) *SaveSearchUseCase {
	return &SaveSearchUseCase{repo: repo}
}

// Execute сохраняет снапшот фильтров под именем. Пустые поля вычищаются до
// записи, чтобы в хранилище попадали только осмысленно заданные предикаты.
// Дедупликации по имени нет: два сохранения с одним именем — две записи.
func (uc *SaveSearchUseCase) Execute(ctx context.Context, userID uuid.UUID, name string, filters domain.SearchFilters) (*domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveSearch",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if userID == uuid.Nil {
		ucLogger.Warn("Save attempt without identity", nil)
		return nil, domain.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		ucLogger.Warn("Save attempt with empty name", nil)
		return nil, fmt.Errorf("%w: saved search name is required", domain.ErrValidation)
	}

	pruned := filters.Prune()

	// Снапшот проверяется по схеме до записи: битые фильтры не должны
	// попасть в хранилище и сломать последующий Apply.
	if err := contracts.ValidateSavedSearchFilters(pruned); err != nil {
		ucLogger.Warn("Filters snapshot failed schema validation", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	search := &domain.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Filters:   pruned,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, search); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"search_id": search.ID})
	return search, nil
}
