package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// GetDashboardUseCasePort — агрегированные счетчики для дашборда брокера.
type GetDashboardUseCasePort interface {
	Execute(ctx context.Context, brokerID uuid.UUID) (*domain.DashboardCounts, error)
}
