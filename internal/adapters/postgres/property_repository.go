package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// Список колонок для выборок. Порядок согласован со scanProperty.
const propertyColumns = `p.id, p.broker_id, p.agency_id, p.city, p.district, p.street, p.house_number,
	p.heating_type, p.floor_number, p.num_rooms, p.area_m2, p.price, p.purpose, p.type, p.status,
	p.description, p.images, p.created_at, p.updated_at`

// PropertyRepository - реализация PropertyStoragePort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.BrokerID, &p.AgencyID, &p.City, &p.District, &p.Street, &p.HouseNumber,
		&p.HeatingType, &p.FloorNumber, &p.NumRooms, &p.AreaM2, &p.Price, &p.Purpose, &p.Type, &p.Status,
		&p.Description, &p.Images, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Search выполняет поиск по фильтрам: COUNT и выборка страницы в одной
// транзакции, чтобы между ними не было гонки.
func (r *PropertyRepository) Search(ctx context.Context, filters domain.SearchFilters, page domain.PageRequest) (*domain.SearchResultPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "Search",
		"page":      page.Page,
		"page_size": page.PageSize,
	})

	whereClause, orderClause, args := applyFilters(filters)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	// Если ничего не найдено, нет смысла делать второй запрос
	if totalCount == 0 {
		return &domain.SearchResultPage{
			Properties: []domain.Property{},
			TotalCount: 0,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: 0,
		}, nil
	}

	var dataQuery strings.Builder
	dataQuery.WriteString("SELECT ")
	dataQuery.WriteString(propertyColumns)
	dataQuery.WriteString(" FROM properties p ")
	dataQuery.WriteString(whereClause)
	dataQuery.WriteString(" ")
	dataQuery.WriteString(orderClause)

	limitOffsetArgs := append(args, page.PageSize, page.Offset())
	pagedQuery := fmt.Sprintf("%s LIMIT $%d OFFSET $%d", dataQuery.String(), len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, pagedQuery, limitOffsetArgs...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": pagedQuery})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0, page.PageSize)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Search finished", port.Fields{
		"total_found":   totalCount,
		"items_on_page": len(properties),
	})

	return &domain.SearchResultPage{
		Properties: properties,
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: domain.TotalPages(totalCount, page.PageSize),
	}, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties p WHERE p.id = $1", propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (id, broker_id, agency_id, city, district, street, house_number,
			heating_type, floor_number, num_rooms, area_m2, price, purpose, type, status,
			description, images, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.BrokerID, p.AgencyID, p.City, p.District, p.Street, p.HouseNumber,
		p.HeatingType, p.FloorNumber, p.NumRooms, p.AreaM2, p.Price, p.Purpose, p.Type, p.Status,
		p.Description, p.Images, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// Update обновляет только собственное объявление брокера.
func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `
		UPDATE properties SET city = $1, district = $2, street = $3, house_number = $4,
			heating_type = $5, floor_number = $6, num_rooms = $7, area_m2 = $8, price = $9,
			purpose = $10, type = $11, status = $12, description = $13, images = $14,
			updated_at = now()
		WHERE id = $15 AND broker_id = $16`

	cmdTag, err := r.pool.Exec(ctx, query,
		p.City, p.District, p.Street, p.HouseNumber,
		p.HeatingType, p.FloorNumber, p.NumRooms, p.AreaM2, p.Price,
		p.Purpose, p.Type, p.Status, p.Description, p.Images,
		p.ID, p.BrokerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id, brokerID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1 AND broker_id = $2", id, brokerID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByBroker — страница объявлений одного брокера, новые первыми.
func (r *PropertyRepository) ListByBroker(ctx context.Context, brokerID uuid.UUID, page domain.PageRequest) (*domain.SearchResultPage, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM properties WHERE broker_id = $1", brokerID).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count broker properties: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.broker_id = $1
		ORDER BY p.created_at DESC, p.id ASC LIMIT $2 OFFSET $3`, propertyColumns)

	rows, err := tx.Query(ctx, query, brokerID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query broker properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0, page.PageSize)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.SearchResultPage{
		Properties: properties,
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: domain.TotalPages(totalCount, page.PageSize),
	}, nil
}

func (r *PropertyRepository) CountByBroker(ctx context.Context, brokerID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties WHERE broker_id = $1", brokerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count broker properties: %w", err)
	}
	return count, nil
}
