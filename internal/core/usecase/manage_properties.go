package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// ManagePropertiesUseCase — CRUD объявлений. Владение всегда проверяется:
// brokerID приходит явно из слоя аутентификации, не из самого объявления.
type ManagePropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewManagePropertiesUseCase(storage port.PropertyStoragePort) *ManagePropertiesUseCase {
	return &ManagePropertiesUseCase{storage: storage}
}

func (uc *ManagePropertiesUseCase) Create(ctx context.Context, brokerID uuid.UUID, property *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ManageProperties.Create",
		"broker_id": brokerID,
	})
	ucLogger.Info("Use case started", nil)

	if !domain.ValidType(property.Type) || property.Type == "" {
		return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrValidation, property.Type)
	}
	if !domain.ValidPurpose(property.Purpose) || property.Purpose == "" {
		return nil, fmt.Errorf("%w: unknown purpose %q", domain.ErrValidation, property.Purpose)
	}

	property.ID = uuid.New()
	property.BrokerID = brokerID
	property.CreatedAt = time.Now().UTC()
	if property.Status == "" {
		property.Status = domain.PropertyStatusActive
	}

	if err := uc.storage.Create(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID})
	return property, nil
}

func (uc *ManagePropertiesUseCase) Update(ctx context.Context, brokerID uuid.UUID, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ManageProperties.Update",
		"broker_id":   brokerID,
		"property_id": property.ID,
	})
	ucLogger.Info("Use case started", nil)

	if !domain.ValidType(property.Type) || !domain.ValidPurpose(property.Purpose) {
		return fmt.Errorf("%w: invalid type or purpose", domain.ErrValidation)
	}

	property.BrokerID = brokerID
	if err := uc.storage.Update(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

func (uc *ManagePropertiesUseCase) Delete(ctx context.Context, brokerID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ManageProperties.Delete",
		"broker_id":   brokerID,
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, propertyID, brokerID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

func (uc *ManagePropertiesUseCase) Get(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	return uc.storage.GetByID(ctx, propertyID)
}

func (uc *ManagePropertiesUseCase) ListMine(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.SearchResultPage, error) {
	return uc.storage.ListByBroker(ctx, brokerID, page.Clamp())
}
