package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// SearchPropertiesUseCasePort — поиск объектов по фильтрам с пагинацией.
type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error)
}
