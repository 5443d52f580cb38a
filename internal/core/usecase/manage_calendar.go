package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ManageCalendarUseCase struct {
	repo port.CalendarRepositoryPort
}

func NewManageCalendarUseCase(repo port.CalendarRepositoryPort) *ManageCalendarUseCase {
	return &ManageCalendarUseCase{repo: repo}
}

func (uc *ManageCalendarUseCase) Create(ctx context.Context, brokerID uuid.UUID, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageCalendar.Create",
		"broker_id": brokerID,
	})
	ucLogger.Info("Use case started", nil)

	if err := event.Validate(); err != nil {
		ucLogger.Warn("Event validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	event.ID = uuid.New()
	event.BrokerID = brokerID
	event.CreatedAt = time.Now().UTC()

	if err := uc.repo.Create(ctx, event); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"event_id": event.ID})
	return event, nil
}

func (uc *ManageCalendarUseCase) Update(ctx context.Context, brokerID uuid.UUID, event *domain.CalendarEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageCalendar.Update",
		"broker_id": brokerID,
		"event_id":  event.ID,
	})

	if err := event.Validate(); err != nil {
		ucLogger.Warn("Event validation failed", port.Fields{"error": err.Error()})
		return err
	}

	event.BrokerID = brokerID
	if err := uc.repo.Update(ctx, event); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageCalendarUseCase) Delete(ctx context.Context, brokerID, eventID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageCalendar.Delete",
		"broker_id": brokerID,
		"event_id":  eventID,
	})

	if err := uc.repo.Delete(ctx, eventID, brokerID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageCalendarUseCase) Get(ctx context.Context, brokerID, eventID uuid.UUID) (*domain.CalendarEvent, error) {
	return uc.repo.GetByID(ctx, eventID, brokerID)
}

func (uc *ManageCalendarUseCase) ListRange(ctx context.Context, brokerID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error) {
	return uc.repo.ListByRange(ctx, brokerID, from, to)
}
