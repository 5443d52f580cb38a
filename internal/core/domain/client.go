package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client — клиент брокера (CRM-запись).
type Client struct {
	ID        uuid.UUID
	BrokerID  uuid.UUID
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// PaginatedClients — страница клиентов для списочных выдач.
type PaginatedClients struct {
	Clients    []Client
	TotalCount int
	Page       int
	PageSize   int
}
