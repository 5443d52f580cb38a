package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ManageCallLogsUseCase struct {
	repo port.CallLogRepositoryPort
}

func NewManageCallLogsUseCase(repo port.CallLogRepositoryPort) *ManageCallLogsUseCase {
	return &ManageCallLogsUseCase{repo: repo}
}

func (uc *ManageCallLogsUseCase) Create(ctx context.Context, brokerID uuid.UUID, log *domain.CallLog) (*domain.CallLog, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageCallLogs.Create",
		"broker_id": brokerID,
	})
	ucLogger.Info("Use case started", nil)

	log.Description = strings.TrimSpace(log.Description)
	if log.Description == "" {
		return nil, fmt.Errorf("%w: call description is required", domain.ErrValidation)
	}
	if log.CallTime.IsZero() {
		return nil, fmt.Errorf("%w: call time is required", domain.ErrValidation)
	}

	log.ID = uuid.New()
	log.BrokerID = brokerID
	log.ReminderSent = false
	log.CreatedAt = time.Now().UTC()

	if err := uc.repo.Create(ctx, log); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"call_log_id": log.ID})
	return log, nil
}

func (uc *ManageCallLogsUseCase) Update(ctx context.Context, brokerID uuid.UUID, log *domain.CallLog) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ManageCallLogs.Update",
		"broker_id":   brokerID,
		"call_log_id": log.ID,
	})

	log.Description = strings.TrimSpace(log.Description)
	if log.Description == "" {
		return fmt.Errorf("%w: call description is required", domain.ErrValidation)
	}

	// Перенос напоминания в будущее открывает его для диспетчера заново.
	if log.ReminderAt != nil && log.ReminderAt.After(time.Now()) {
		log.ReminderSent = false
	}

	log.BrokerID = brokerID
	if err := uc.repo.Update(ctx, log); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageCallLogsUseCase) Delete(ctx context.Context, brokerID, logID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ManageCallLogs.Delete",
		"broker_id":   brokerID,
		"call_log_id": logID,
	})

	if err := uc.repo.Delete(ctx, logID, brokerID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageCallLogsUseCase) Get(ctx context.Context, brokerID, logID uuid.UUID) (*domain.CallLog, error) {
	return uc.repo.GetByID(ctx, logID, brokerID)
}

func (uc *ManageCallLogsUseCase) List(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedCallLogs, error) {
	return uc.repo.ListByBroker(ctx, brokerID, page.Clamp())
}
