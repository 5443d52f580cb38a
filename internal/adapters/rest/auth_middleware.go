package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const claimsKey = contextKey("claims")

// AuthMiddleware проверяет Bearer-токен и кладет claims в контекст запроса.
type AuthMiddleware struct {
	tokens port.TokenServicePort
}

func NewAuthMiddleware(tokens port.TokenServicePort) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be in 'Bearer <token>' format")
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromRequest достает claims, положенные Authenticate.
func ClaimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*domain.Claims)
	return claims, ok
}

// UserIDFromRequest — userID текущего пользователя, uuid.Nil если запрос
// прошел мимо Authenticate.
func UserIDFromRequest(r *http.Request) uuid.UUID {
	if claims, ok := ClaimsFromRequest(r); ok {
		return claims.UserID
	}
	return uuid.Nil
}
