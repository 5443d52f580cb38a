package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// LoginUserUseCasePort — вход по email/паролю, возвращает пользователя и токен.
type LoginUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
