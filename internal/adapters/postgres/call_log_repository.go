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

const callLogColumns = `id, broker_id, client_id, property_id, description, call_time,
	duration_minutes, outcome, reminder_at, reminder_sent, created_at, updated_at`

// CallLogRepository - реализация CallLogRepositoryPort для PostgreSQL.
type CallLogRepository struct {
	pool *pgxpool.Pool
}

func NewCallLogRepository(pool *pgxpool.Pool) (*CallLogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CallLogRepository{pool: pool}, nil
}

func scanCallLog(row pgx.Row) (*domain.CallLog, error) {
	var l domain.CallLog
	err := row.Scan(
		&l.ID, &l.BrokerID, &l.ClientID, &l.PropertyID, &l.Description, &l.CallTime,
		&l.DurationMinutes, &l.Outcome, &l.ReminderAt, &l.ReminderSent, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *CallLogRepository) Create(ctx context.Context, log *domain.CallLog) error {
	query := `INSERT INTO call_logs (id, broker_id, client_id, property_id, description, call_time,
			duration_minutes, outcome, reminder_at, reminder_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.BrokerID, log.ClientID, log.PropertyID, log.Description, log.CallTime,
		log.DurationMinutes, log.Outcome, log.ReminderAt, log.ReminderSent, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert call log: %w", err)
	}
	return nil
}

func (r *CallLogRepository) Update(ctx context.Context, log *domain.CallLog) error {
	// Редактирование сбрасывает reminder_sent, если напоминание перенесли.
	query := `UPDATE call_logs SET client_id = $1, property_id = $2, description = $3, call_time = $4,
			duration_minutes = $5, outcome = $6, reminder_at = $7, reminder_sent = $8, updated_at = now()
		WHERE id = $9 AND broker_id = $10`

	cmdTag, err := r.pool.Exec(ctx, query,
		log.ClientID, log.PropertyID, log.Description, log.CallTime,
		log.DurationMinutes, log.Outcome, log.ReminderAt, log.ReminderSent, log.ID, log.BrokerID)
	if err != nil {
		return fmt.Errorf("failed to update call log: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CallLogRepository) Delete(ctx context.Context, id, brokerID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM call_logs WHERE id = $1 AND broker_id = $2", id, brokerID)
	if err != nil {
		return fmt.Errorf("failed to delete call log: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CallLogRepository) GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.CallLog, error) {
	query := fmt.Sprintf("SELECT %s FROM call_logs WHERE id = $1 AND broker_id = $2", callLogColumns)

	l, err := scanCallLog(r.pool.QueryRow(ctx, query, id, brokerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call log: %w", err)
	}
	return l, nil
}

func (r *CallLogRepository) ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedCallLogs, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM call_logs WHERE broker_id = $1", brokerID).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count call logs: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM call_logs WHERE broker_id = $1
		ORDER BY call_time DESC, id ASC LIMIT $2 OFFSET $3`, callLogColumns)

	rows, err := tx.Query(ctx, query, brokerID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query call logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.CallLog, 0, page.PageSize)
	for rows.Next() {
		l, err := scanCallLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call log: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during call logs iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PaginatedCallLogs{
		CallLogs:   logs,
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// FindDueReminders выбирает звонки с наступившим и еще не отправленным
// напоминанием. FOR UPDATE SKIP LOCKED не нужен: диспетчер один.
func (r *CallLogRepository) FindDueReminders(ctx context.Context, now time.Time, limit int) ([]domain.CallLog, error) {
	query := fmt.Sprintf(`SELECT %s FROM call_logs
		WHERE reminder_at IS NOT NULL AND reminder_at <= $1 AND reminder_sent = false
		ORDER BY reminder_at ASC LIMIT $2`, callLogColumns)

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.CallLog, 0, limit)
	for rows.Next() {
		l, err := scanCallLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call log: %w", err)
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}

func (r *CallLogRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "UPDATE call_logs SET reminder_sent = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}
