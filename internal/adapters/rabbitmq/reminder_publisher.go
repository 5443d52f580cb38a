package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"brokerage-service/internal/constants"
	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// CallReminderDTO - тело сообщения с напоминанием о звонке
type CallReminderDTO struct {
	CallLogID   uuid.UUID  `json:"call_log_id"`
	BrokerID    uuid.UUID  `json:"broker_id"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	Description string     `json:"description"`
	ReminderAt  time.Time  `json:"reminder_at"`
}

// ReminderPublisher публикует напоминания в обменник broker_notifications.
// Держит собственный канал поверх общего соединения.
type ReminderPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func NewReminderPublisher(conn *amqp.Connection) (*ReminderPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq adapter: connection cannot be nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq adapter: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		constants.ExchangeNotifications,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to declare exchange '%s': %w", constants.ExchangeNotifications, err)
	}

	return &ReminderPublisher{
		connection: conn,
		channel:    ch,
		exchange:   constants.ExchangeNotifications,
		routingKey: constants.RoutingKeyCallReminder,
	}, nil
}

func (p *ReminderPublisher) NotifyCallReminder(ctx context.Context, log domain.CallLog) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ReminderPublisher",
		"routing_key": p.routingKey,
		"call_log_id": log.ID.String(),
	})

	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("rabbitmq adapter: not connected or channel/connection is closed")
	}
	if log.ReminderAt == nil {
		return fmt.Errorf("rabbitmq adapter: call log %s has no reminder set", log.ID)
	}

	dto := CallReminderDTO{
		CallLogID:   log.ID,
		BrokerID:    log.BrokerID,
		ClientID:    log.ClientID,
		PropertyID:  log.PropertyID,
		Description: log.Description,
		ReminderAt:  *log.ReminderAt,
	}

	body, _ := json.Marshal(dto)

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing call reminder", port.Fields{"broker_id": log.BrokerID.String()})
	err := p.channel.PublishWithContext(
		publishCtx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		adapterLogger.Error("Failed to publish reminder", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish reminder for call log %s: %w", log.ID, err)
	}

	adapterLogger.Info("Successfully published reminder", nil)
	return nil
}

func (p *ReminderPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("rabbitmq adapter: error closing channel: %w", err)
		}
		p.channel = nil
	}
	return nil
}
