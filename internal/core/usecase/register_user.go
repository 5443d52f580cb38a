package usecase

import (
	"context"
	"fmt"
	"strings"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type RegisterUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewRegisterUserUseCase(userRepo port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, email, password, role string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to register user", nil)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	// Проверяем занятость email до создания. Уникальный индекс в БД всё
	// равно страхует от гонки двух одновременных регистраций.
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed to check email", err, nil)
		return nil, err
	}
	if existing != nil {
		ucLogger.Warn("Registration failed: email already in use", nil)
		return nil, domain.ErrEmailInUse
	}

	user, err := domain.NewUser(email, password, role)
	if err != nil {
		ucLogger.Error("Failed to create user entity", err, nil)
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: user registered successfully", port.Fields{"user_id": user.ID.String()})
	return user, nil
}
