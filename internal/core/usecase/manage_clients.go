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

type ManageClientsUseCase struct {
	repo port.ClientRepositoryPort
}

func NewManageClientsUseCase(repo port.ClientRepositoryPort) *ManageClientsUseCase {
	return &ManageClientsUseCase{repo: repo}
}

func (uc *ManageClientsUseCase) Create(ctx context.Context, brokerID uuid.UUID, client *domain.Client) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageClients.Create",
		"broker_id": brokerID,
	})
	ucLogger.Info("Use case started", nil)

	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return nil, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}

	client.ID = uuid.New()
	client.BrokerID = brokerID
	client.CreatedAt = time.Now().UTC()

	if err := uc.repo.Create(ctx, client); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"client_id": client.ID})
	return client, nil
}

func (uc *ManageClientsUseCase) Update(ctx context.Context, brokerID uuid.UUID, client *domain.Client) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageClients.Update",
		"broker_id": brokerID,
		"client_id": client.ID,
	})

	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}

	client.BrokerID = brokerID
	if err := uc.repo.Update(ctx, client); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageClientsUseCase) Delete(ctx context.Context, brokerID, clientID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageClients.Delete",
		"broker_id": brokerID,
		"client_id": clientID,
	})

	if err := uc.repo.Delete(ctx, clientID, brokerID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	return nil
}

func (uc *ManageClientsUseCase) Get(ctx context.Context, brokerID, clientID uuid.UUID) (*domain.Client, error) {
	return uc.repo.GetByID(ctx, clientID, brokerID)
}

func (uc *ManageClientsUseCase) List(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedClients, error) {
	return uc.repo.ListByBroker(ctx, brokerID, page.Clamp())
}
