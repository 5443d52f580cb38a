package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ManagePropertiesUseCasePort — CRUD объявлений брокера.
type ManagePropertiesUseCasePort interface {
	Create(ctx context.Context, brokerID uuid.UUID, property *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, brokerID uuid.UUID, property *domain.Property) error
	Delete(ctx context.Context, brokerID, propertyID uuid.UUID) error
	Get(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
	ListMine(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.SearchResultPage, error)
}
