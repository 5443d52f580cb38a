package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage-service/internal/core/domain"
)

// MessageRepository - реализация MessageRepositoryPort для PostgreSQL.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) (*MessageRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &MessageRepository{pool: pool}, nil
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (id, sender_id, receiver_id, property_id, content, is_read, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.PropertyID, msg.Content, msg.IsRead, msg.SentAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListConversation — переписка двух пользователей после метки after,
// в хронологическом порядке. after == zero value отдает хвост переписки.
func (r *MessageRepository) ListConversation(ctx context.Context, userID, partnerID uuid.UUID, after time.Time, limit int) ([]domain.Message, error) {
	query := `SELECT id, sender_id, receiver_id, property_id, content, is_read, sent_at
		FROM messages
		WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
			AND sent_at > $3
		ORDER BY sent_at ASC, id ASC
		LIMIT $4`

	rows, err := r.pool.Query(ctx, query, userID, partnerID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, limit)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.PropertyID, &m.Content, &m.IsRead, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListConversations — собеседники пользователя с последним сообщением и
// количеством непрочитанных, свежие диалоги первыми.
func (r *MessageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	query := `
		WITH partners AS (
			SELECT DISTINCT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS partner_id
			FROM messages
			WHERE sender_id = $1 OR receiver_id = $1
		)
		SELECT
			pr.partner_id,
			COALESCE(u.name, ''),
			lm.content,
			lm.sent_at,
			(SELECT COUNT(*) FROM messages
				WHERE sender_id = pr.partner_id AND receiver_id = $1 AND is_read = false)
		FROM partners pr
		JOIN users u ON u.id = pr.partner_id
		JOIN LATERAL (
			SELECT content, sent_at FROM messages
			WHERE (sender_id = $1 AND receiver_id = pr.partner_id)
				OR (sender_id = pr.partner_id AND receiver_id = $1)
			ORDER BY sent_at DESC LIMIT 1
		) lm ON true
		ORDER BY lm.sent_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	conversations := make([]domain.Conversation, 0)
	for rows.Next() {
		var c domain.Conversation
		if err := rows.Scan(&c.PartnerID, &c.PartnerName, &c.LastMessage, &c.LastSentAt, &c.UnreadCount); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

func (r *MessageRepository) MarkRead(ctx context.Context, userID, partnerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE messages SET is_read = true WHERE receiver_id = $1 AND sender_id = $2 AND is_read = false",
		userID, partnerID)
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = false", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
