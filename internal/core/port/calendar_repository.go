package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// CalendarRepositoryPort — хранилище событий календаря.
type CalendarRepositoryPort interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id, brokerID uuid.UUID) error
	GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.CalendarEvent, error)

	// ListByRange возвращает события брокера, пересекающиеся с интервалом [from, to).
	ListByRange(ctx context.Context, brokerID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error)
	CountUpcoming(ctx context.Context, brokerID uuid.UUID, after time.Time) (int, error)
}
