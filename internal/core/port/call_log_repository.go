package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// CallLogRepositoryPort — журнал звонков.
type CallLogRepositoryPort interface {
	Create(ctx context.Context, log *domain.CallLog) error
	Update(ctx context.Context, log *domain.CallLog) error
	Delete(ctx context.Context, id, brokerID uuid.UUID) error
	GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.CallLog, error)
	ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedCallLogs, error)

	// FindDueReminders возвращает записи с наступившим reminder_at,
	// по которым напоминание еще не отправлялось.
	FindDueReminders(ctx context.Context, now time.Time, limit int) ([]domain.CallLog, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
}
