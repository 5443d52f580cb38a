package port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// SavedSearchRepositoryPort — хранилище именованных снапшотов фильтров.
type SavedSearchRepositoryPort interface {
	Create(ctx context.Context, search *domain.SavedSearch) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.SavedSearch, error)

	// Delete удаляет только запись самого пользователя.
	// Чужой или несуществующий id — domain.ErrNotFound.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
