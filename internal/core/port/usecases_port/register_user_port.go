package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// RegisterUserUseCasePort — регистрация нового брокера.
type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, email, password, role string) (*domain.User, error)
}
