package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type AuthHandler struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
}

func NewAuthHandler(
	registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort) *AuthHandler {
	return &AuthHandler{registerUC: registerUC, loginUC: loginUC}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "Register",
		"email":   req.Email,
	})
	handlerLogger.Debug("Processing registration request", nil)

	user, err := h.registerUC.Execute(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("User registered", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusCreated, UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "Login",
		"email":   req.Email,
	})
	handlerLogger.Debug("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		handlerLogger.Warn("Login failed", port.Fields{"error": err.Error()})
		// Не раскрываем, что именно не совпало
		WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	handlerLogger.Info("User logged in", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusOK, LoginResponse{
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  user.Role,
		},
		Token: token,
	})
}
