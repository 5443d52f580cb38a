package port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ClientRepositoryPort — CRM-хранилище клиентов брокера.
type ClientRepositoryPort interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id, brokerID uuid.UUID) error
	GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.Client, error)
	ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedClients, error)
	CountByBroker(ctx context.Context, brokerID uuid.UUID) (int, error)
}
