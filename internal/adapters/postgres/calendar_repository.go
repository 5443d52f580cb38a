package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage-service/internal/core/domain"
)

const eventColumns = `id, broker_id, client_id, property_id, event_type, title, description,
	start_time, end_time, reminder, created_at, updated_at`

// CalendarRepository - реализация CalendarRepositoryPort для PostgreSQL.
type CalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) (*CalendarRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CalendarRepository{pool: pool}, nil
}

func scanEvent(row pgx.Row) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	err := row.Scan(
		&e.ID, &e.BrokerID, &e.ClientID, &e.PropertyID, &e.EventType, &e.Title, &e.Description,
		&e.StartTime, &e.EndTime, &e.Reminder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *CalendarRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	query := `INSERT INTO calendar_events (id, broker_id, client_id, property_id, event_type, title,
			description, start_time, end_time, reminder, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		event.ID, event.BrokerID, event.ClientID, event.PropertyID, event.EventType, event.Title,
		event.Description, event.StartTime, event.EndTime, event.Reminder, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return nil
}

func (r *CalendarRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	query := `UPDATE calendar_events SET client_id = $1, property_id = $2, event_type = $3, title = $4,
			description = $5, start_time = $6, end_time = $7, reminder = $8, updated_at = now()
		WHERE id = $9 AND broker_id = $10`

	cmdTag, err := r.pool.Exec(ctx, query,
		event.ClientID, event.PropertyID, event.EventType, event.Title,
		event.Description, event.StartTime, event.EndTime, event.Reminder, event.ID, event.BrokerID)
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id, brokerID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM calendar_events WHERE id = $1 AND broker_id = $2", id, brokerID)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CalendarRepository) GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.CalendarEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE id = $1 AND broker_id = $2", eventColumns)

	e, err := scanEvent(r.pool.QueryRow(ctx, query, id, brokerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return e, nil
}

// ListByRange — события, пересекающиеся с интервалом [from, to).
func (r *CalendarRepository) ListByRange(ctx context.Context, brokerID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM calendar_events
		WHERE broker_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC`, eventColumns)

	rows, err := r.pool.Query(ctx, query, brokerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.CalendarEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *CalendarRepository) CountUpcoming(ctx context.Context, brokerID uuid.UUID, after time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM calendar_events WHERE broker_id = $1 AND start_time >= $2",
		brokerID, after).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	return count, nil
}
