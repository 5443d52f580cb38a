package rest

import (
	"errors"
	"net/http"

	"brokerage-service/internal/core/domain"
)

// statusFromError переводит доменные ошибки в HTTP-статусы.
// Все неопознанные ошибки считаются внутренними.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError пишет ответ по доменной ошибке. Текст внутренних
// ошибок наружу не отдаем.
func writeDomainError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		WriteJSONError(w, status, "Internal server error")
		return
	}
	WriteJSONError(w, status, err.Error())
}
