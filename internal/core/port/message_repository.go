package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// MessageRepositoryPort — хранилище личных сообщений.
type MessageRepositoryPort interface {
	Create(ctx context.Context, msg *domain.Message) error

	// ListConversation возвращает переписку двух пользователей,
	// отправленную строго после after (курсор для polling-клиента).
	ListConversation(ctx context.Context, userID, partnerID uuid.UUID, after time.Time, limit int) ([]domain.Message, error)

	ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)

	// MarkRead помечает прочитанными все входящие от partnerID к userID.
	MarkRead(ctx context.Context, userID, partnerID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}
