package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

// DeleteSavedSearchUseCasePort — удаление сохраненного поиска владельцем.
type DeleteSavedSearchUseCasePort interface {
	Execute(ctx context.Context, userID, searchID uuid.UUID) error
}
