package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// SaveSearchUseCasePort — сохранение текущих фильтров под именем.
type SaveSearchUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, name string, filters domain.SearchFilters) (*domain.SavedSearch, error)
}
