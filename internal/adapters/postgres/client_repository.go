package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage-service/internal/core/domain"
)

// ClientRepository - реализация ClientRepositoryPort для PostgreSQL.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) (*ClientRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ClientRepository{pool: pool}, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (id, broker_id, name, phone, email, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		client.ID, client.BrokerID, client.Name, client.Phone, client.Email, client.Notes, client.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `UPDATE clients SET name = $1, phone = $2, email = $3, notes = $4, updated_at = now()
		WHERE id = $5 AND broker_id = $6`

	cmdTag, err := r.pool.Exec(ctx, query,
		client.Name, client.Phone, client.Email, client.Notes, client.ID, client.BrokerID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id, brokerID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM clients WHERE id = $1 AND broker_id = $2", id, brokerID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id, brokerID uuid.UUID) (*domain.Client, error) {
	query := `SELECT id, broker_id, name, phone, email, notes, created_at, updated_at
		FROM clients WHERE id = $1 AND broker_id = $2`

	var c domain.Client
	err := r.pool.QueryRow(ctx, query, id, brokerID).Scan(
		&c.ID, &c.BrokerID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.PaginatedClients, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM clients WHERE broker_id = $1", brokerID).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `SELECT id, broker_id, name, phone, email, notes, created_at, updated_at
		FROM clients WHERE broker_id = $1 ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`

	rows, err := tx.Query(ctx, query, brokerID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0, page.PageSize)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.BrokerID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during clients iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PaginatedClients{
		Clients:    clients,
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

func (r *ClientRepository) CountByBroker(ctx context.Context, brokerID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM clients WHERE broker_id = $1", brokerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}
