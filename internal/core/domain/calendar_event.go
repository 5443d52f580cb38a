package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Типы событий календаря.
const (
	EventTypeAppointment = "appointment"
	EventTypeViewing     = "viewing"
	EventTypeTask        = "task"
)

// CalendarEvent — событие в календаре брокера.
type CalendarEvent struct {
	ID         uuid.UUID
	BrokerID   uuid.UUID
	ClientID   *uuid.UUID
	PropertyID *uuid.UUID
	EventType  string
	Title      string
	Description string
	StartTime  time.Time
	EndTime    time.Time
	Reminder   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Validate проверяет инварианты события перед сохранением.
func (e CalendarEvent) Validate() error {
	switch e.EventType {
	case EventTypeAppointment, EventTypeViewing, EventTypeTask:
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrValidation, e.EventType)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: event title is required", ErrValidation)
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	return nil
}
