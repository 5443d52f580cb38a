package port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// UserRepositoryPort — хранилище пользователей.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail возвращает (nil, nil), если пользователь не найден.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
