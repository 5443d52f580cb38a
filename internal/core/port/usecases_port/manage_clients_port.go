package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ManageClientsUseCasePort — CRM-операции над клиентами брокера.
type ManageClientsUseCasePort interface {
	Create(ctx context.Context, brokerID uuid.UUID, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, brokerID uuid.UUID, client *domain.Client) error
	Delete(ctx context.Context, brokerID, clientID uuid.UUID) error
	Get(ctx context.Context, brokerID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedClients, error)
}
