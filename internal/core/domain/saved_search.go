package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch — именованный снапшот фильтров, принадлежит одному пользователю.
// После создания не изменяется: только применение и удаление.
type SavedSearch struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Filters   SearchFilters
	CreatedAt time.Time
}
