package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallLog — запись о звонке. Опционально привязана к клиенту и объекту.
type CallLog struct {
	ID              uuid.UUID
	BrokerID        uuid.UUID
	ClientID        *uuid.UUID
	PropertyID      *uuid.UUID
	Description     string
	CallTime        time.Time
	DurationMinutes *int
	Outcome         string

	// Напоминание: ReminderAt в будущем, ReminderSent выставляет диспетчер.
	ReminderAt   *time.Time
	ReminderSent bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// PaginatedCallLogs — страница журнала звонков.
type PaginatedCallLogs struct {
	CallLogs   []CallLog
	TotalCount int
	Page       int
	PageSize   int
}
