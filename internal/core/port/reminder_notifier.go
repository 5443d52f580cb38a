package port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// ReminderNotifierPort — исходящий канал уведомлений о напоминаниях.
type ReminderNotifierPort interface {
	NotifyCallReminder(ctx context.Context, log domain.CallLog) error
}

// BackgroundWorkerPort — жизненный цикл фонового компонента.
// Start блокируется до отмены контекста или фатальной ошибки.
type BackgroundWorkerPort interface {
	Start(ctx context.Context) error
	Close() error
}
