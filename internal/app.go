package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"

	token_adapter "brokerage-service/internal/adapters/jwt"
	logger_adapter "brokerage-service/internal/adapters/logger"
	postgres_adapter "brokerage-service/internal/adapters/postgres"
	rabbitmq_adapter "brokerage-service/internal/adapters/rabbitmq"
	"brokerage-service/internal/adapters/rest"
	"brokerage-service/internal/configs"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/usecase"
	"brokerage-service/internal/reminder"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	amqpConn          *amqp.Connection
	reminderPublisher *rabbitmq_adapter.ReminderPublisher
	reminderWorker    port.BackgroundWorkerPort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres_adapter.NewClient(context.Background(), postgres_adapter.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepo, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	savedSearchRepo, err := postgres_adapter.NewSavedSearchRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create saved search repository: %w", err)
	}
	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	clientRepo, err := postgres_adapter.NewClientRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	callLogRepo, err := postgres_adapter.NewCallLogRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create call log repository: %w", err)
	}
	calendarRepo, err := postgres_adapter.NewCalendarRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create calendar repository: %w", err)
	}
	messageRepo, err := postgres_adapter.NewMessageRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}
	appLogger.Info("All persistence adapters initialized.", nil)

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// --- 4. RABBITMQ И ДИСПЕТЧЕР НАПОМИНАНИЙ ---
	var amqpConn *amqp.Connection
	var reminderPublisher *rabbitmq_adapter.ReminderPublisher
	var reminderWorker port.BackgroundWorkerPort
	if appConfig.RabbitMQ.Enabled {
		amqpConn, err = amqp.Dial(appConfig.RabbitMQ.URL)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		appLogger.Info("Successfully connected to RabbitMQ!", nil)

		reminderPublisher, err = rabbitmq_adapter.NewReminderPublisher(amqpConn)
		if err != nil {
			dbPool.Close()
			_ = amqpConn.Close()
			return nil, fmt.Errorf("failed to create reminder publisher: %w", err)
		}

		reminderWorker, err = reminder.NewDispatcher(callLogRepo, reminderPublisher, baseLogger, appConfig.Reminder.PollInterval)
		if err != nil {
			dbPool.Close()
			_ = amqpConn.Close()
			return nil, fmt.Errorf("failed to create reminder dispatcher: %w", err)
		}
	} else {
		appLogger.Info("RabbitMQ disabled, call reminders will not be dispatched.", nil)
	}

	// --- 5. USE CASES ---
	searchUC := usecase.NewSearchPropertiesUseCase(propertyRepo)
	saveSearchUC := usecase.NewSaveSearchUseCase(savedSearchRepo)
	listSavedUC := usecase.NewListSavedSearchesUseCase(savedSearchRepo)
	applySavedUC := usecase.NewApplySavedSearchUseCase(savedSearchRepo, propertyRepo)
	deleteSavedUC := usecase.NewDeleteSavedSearchUseCase(savedSearchRepo)
	registerUC := usecase.NewRegisterUserUseCase(userRepo)
	loginUC := usecase.NewLoginUserUseCase(userRepo, tokenService, appConfig.JWT.TokenTTL)
	propertiesUC := usecase.NewManagePropertiesUseCase(propertyRepo)
	clientsUC := usecase.NewManageClientsUseCase(clientRepo)
	callLogsUC := usecase.NewManageCallLogsUseCase(callLogRepo)
	calendarUC := usecase.NewManageCalendarUseCase(calendarRepo)
	messagingUC := usecase.NewMessagingUseCase(messageRepo, userRepo)
	dashboardUC := usecase.NewGetDashboardUseCase(propertyRepo, clientRepo, calendarRepo, messageRepo)
	appLogger.Info("Use cases initialized.", nil)

	// --- 6. REST API SERVER ---
	handlers := rest.Handlers{
		Auth:        rest.NewAuthHandler(registerUC, loginUC),
		Search:      rest.NewSearchHandler(searchUC),
		SavedSearch: rest.NewSavedSearchHandler(saveSearchUC, listSavedUC, applySavedUC, deleteSavedUC),
		Property:    rest.NewPropertyHandler(propertiesUC),
		Client:      rest.NewClientHandler(clientsUC),
		CallLog:     rest.NewCallLogHandler(callLogsUC),
		Calendar:    rest.NewCalendarHandler(calendarUC),
		Message:     rest.NewMessageHandler(messagingUC),
		Dashboard:   rest.NewDashboardHandler(dashboardUC),
	}
	authMW := rest.NewAuthMiddleware(tokenService)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigins, handlers, authMW, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		amqpConn:          amqpConn,
		reminderPublisher: reminderPublisher,
		reminderWorker:    reminderWorker,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var workers sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		workers.Wait()

		if a.reminderPublisher != nil {
			if err := a.reminderPublisher.Close(); err != nil {
				a.logger.Error("Error closing reminder publisher", err, nil)
			}
		}
		if a.amqpConn != nil {
			if err := a.amqpConn.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	if a.reminderWorker != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			if err := a.reminderWorker.Start(appCtx); err != nil && err != context.Canceled {
				a.logger.Error("Reminder dispatcher stopped with error", err, nil)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
