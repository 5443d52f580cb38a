package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ApplySavedSearchUseCasePort — повторный запуск сохраненного поиска.
// Страница всегда сбрасывается на первую.
type ApplySavedSearchUseCasePort interface {
	Execute(ctx context.Context, userID, searchID uuid.UUID, pageSize int) (*domain.SearchResultPage, domain.SearchFilters, error)
}
