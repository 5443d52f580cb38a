package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// ManageCallLogsUseCasePort — операции над журналом звонков.
type ManageCallLogsUseCasePort interface {
	Create(ctx context.Context, brokerID uuid.UUID, log *domain.CallLog) (*domain.CallLog, error)
	Update(ctx context.Context, brokerID uuid.UUID, log *domain.CallLog) error
	Delete(ctx context.Context, brokerID, logID uuid.UUID) error
	Get(ctx context.Context, brokerID, logID uuid.UUID) (*domain.CallLog, error)
	List(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedCallLogs, error)
}
