package usecases_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ManageCalendarUseCasePort — операции над календарем брокера.
type ManageCalendarUseCasePort interface {
	Create(ctx context.Context, brokerID uuid.UUID, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Update(ctx context.Context, brokerID uuid.UUID, event *domain.CalendarEvent) error
	Delete(ctx context.Context, brokerID, eventID uuid.UUID) error
	Get(ctx context.Context, brokerID, eventID uuid.UUID) (*domain.CalendarEvent, error)
	ListRange(ctx context.Context, brokerID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error)
}
