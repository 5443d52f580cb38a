package usecases_port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// MessagingUseCasePort — личные сообщения между брокерами.
type MessagingUseCasePort interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, propertyID *uuid.UUID, content string) (*domain.Message, error)

	// Poll возвращает сообщения переписки после метки after (нулевое
	// значение after — вся переписка, ограниченная limit).
	Poll(ctx context.Context, userID, partnerID uuid.UUID, after time.Time, limit int) ([]domain.Message, error)

	Conversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
	MarkRead(ctx context.Context, userID, partnerID uuid.UUID) error
}
