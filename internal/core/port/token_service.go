package port

import (
	"context"
	"time"

	"brokerage-service/internal/core/domain"
)

// TokenServicePort — контракт для генерации и проверки токенов доступа.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
