package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type GetDashboardUseCase struct {
	properties port.PropertyStoragePort
	clients    port.ClientRepositoryPort
	calendar   port.CalendarRepositoryPort
	messages   port.MessageRepositoryPort
}

func NewGetDashboardUseCase(
	properties port.PropertyStoragePort,
	clients port.ClientRepositoryPort,
	calendar port.CalendarRepositoryPort,
	messages port.MessageRepositoryPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		properties: properties,
		clients:    clients,
		calendar:   calendar,
		messages:   messages,
	}
}

// Execute собирает счетчики для дашборда. Четыре независимых запроса;
// частичный результат не отдаем — любой сбой валит всю операцию.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, brokerID uuid.UUID) (*domain.DashboardCounts, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetDashboard",
		"broker_id": brokerID,
	})
	ucLogger.Debug("Use case started", nil)

	counts := &domain.DashboardCounts{}
	var err error

	if counts.Properties, err = uc.properties.CountByBroker(ctx, brokerID); err != nil {
		ucLogger.Error("Failed to count properties", err, nil)
		return nil, err
	}
	if counts.Clients, err = uc.clients.CountByBroker(ctx, brokerID); err != nil {
		ucLogger.Error("Failed to count clients", err, nil)
		return nil, err
	}
	if counts.UpcomingEvents, err = uc.calendar.CountUpcoming(ctx, brokerID, time.Now().UTC()); err != nil {
		ucLogger.Error("Failed to count upcoming events", err, nil)
		return nil, err
	}
	if counts.UnreadMessages, err = uc.messages.CountUnread(ctx, brokerID); err != nil {
		ucLogger.Error("Failed to count unread messages", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", nil)
	return counts, nil
}
