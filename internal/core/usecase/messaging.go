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

const defaultConversationLimit = 100

type MessagingUseCase struct {
	messages port.MessageRepositoryPort
	users    port.UserRepositoryPort
}

func NewMessagingUseCase(messages port.MessageRepositoryPort, users port.UserRepositoryPort) *MessagingUseCase {
	return &MessagingUseCase{messages: messages, users: users}
}

func (uc *MessagingUseCase) Send(ctx context.Context, senderID, receiverID uuid.UUID, propertyID *uuid.UUID, content string) (*domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "Messaging.Send",
		"sender_id":   senderID,
		"receiver_id": receiverID,
	})
	ucLogger.Info("Use case started", nil)

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", domain.ErrValidation)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", domain.ErrValidation)
	}

	// Получатель должен существовать, иначе сообщение уходит в никуда.
	if _, err := uc.users.FindByID(ctx, receiverID); err != nil {
		ucLogger.Warn("Receiver lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	msg := &domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		PropertyID: propertyID,
		Content:    content,
		IsRead:     false,
		SentAt:     time.Now().UTC(),
	}

	if err := uc.messages.Create(ctx, msg); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"message_id": msg.ID})
	return msg, nil
}

func (uc *MessagingUseCase) Poll(ctx context.Context, userID, partnerID uuid.UUID, after time.Time, limit int) ([]domain.Message, error) {
	if limit < 1 || limit > defaultConversationLimit {
		limit = defaultConversationLimit
	}
	return uc.messages.ListConversation(ctx, userID, partnerID, after, limit)
}

func (uc *MessagingUseCase) Conversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	return uc.messages.ListConversations(ctx, userID)
}

func (uc *MessagingUseCase) MarkRead(ctx context.Context, userID, partnerID uuid.UUID) error {
	return uc.messages.MarkRead(ctx, userID, partnerID)
}
