package port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// PropertyStoragePort — контракт хранилища объектов недвижимости.
type PropertyStoragePort interface {
	// Search выполняет один count+fetch по составленному набору предикатов.
	// Ошибка хранилища означает полностью неуспешный поиск, частичных страниц нет.
	Search(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error

	// Update и Delete выполняются с проверкой владения: WHERE id AND broker_id.
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id, brokerID uuid.UUID) error

	ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.SearchResultPage, error)
	CountByBroker(ctx context.Context, brokerID uuid.UUID) (int, error)
}
