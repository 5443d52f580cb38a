package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// SavedSearchRepository - реализация SavedSearchRepositoryPort для PostgreSQL.
// Снапшот фильтров хранится в jsonb-колонке.
type SavedSearchRepository struct {
	pool *pgxpool.Pool
}

func NewSavedSearchRepository(pool *pgxpool.Pool) (*SavedSearchRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SavedSearchRepository{pool: pool}, nil
}

func (r *SavedSearchRepository) Create(ctx context.Context, search *domain.SavedSearch) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SavedSearchRepository",
		"method":    "Create",
		"user_id":   search.UserID,
	})

	filtersJSON, err := json.Marshal(search.Filters)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	query := `INSERT INTO saved_searches (id, user_id, name, filters, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err = r.pool.Exec(ctx, query, search.ID, search.UserID, search.Name, filtersJSON, search.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to insert saved search", err, port.Fields{"query": query})
		return fmt.Errorf("failed to insert saved search: %w", err)
	}

	repoLogger.Debug("Saved search created.", nil)
	return nil
}

func (r *SavedSearchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	query := `SELECT id, user_id, name, filters, created_at FROM saved_searches
		WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved searches: %w", err)
	}
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0)
	for rows.Next() {
		s, err := scanSavedSearch(rows)
		if err != nil {
			return nil, err
		}
		searches = append(searches, *s)
	}
	return searches, rows.Err()
}

// GetByID отдает запись только ее владельцу: чужой id неотличим от несуществующего.
func (r *SavedSearchRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.SavedSearch, error) {
	query := `SELECT id, user_id, name, filters, created_at FROM saved_searches
		WHERE id = $1 AND user_id = $2`

	s, err := scanSavedSearch(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}
	return s, nil
}

func (r *SavedSearchRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SavedSearchRepository",
		"method":    "Delete",
		"search_id": id,
		"user_id":   userID,
	})

	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM saved_searches WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		repoLogger.Error("Failed to delete saved search", err, nil)
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Saved search not found or owned by another user.", nil)
		return domain.ErrNotFound
	}
	return nil
}

func scanSavedSearch(row pgx.Row) (*domain.SavedSearch, error) {
	var s domain.SavedSearch
	var filtersJSON []byte
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &filtersJSON, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(filtersJSON, &s.Filters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filters: %w", err)
	}
	return &s, nil
}
