package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message — сообщение между двумя пользователями (polling-модель, без websocket).
type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	PropertyID *uuid.UUID
	Content    string
	IsRead     bool
	SentAt     time.Time
}

// Conversation — собеседник + агрегаты для списка диалогов.
type Conversation struct {
	PartnerID     uuid.UUID
	PartnerName   string
	LastMessage   string
	LastSentAt    time.Time
	UnreadCount   int
}
