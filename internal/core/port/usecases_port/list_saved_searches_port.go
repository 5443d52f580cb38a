package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ListSavedSearchesUseCasePort — список сохраненных поисков пользователя.
type ListSavedSearchesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
}
