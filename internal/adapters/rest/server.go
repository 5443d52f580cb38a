package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "brokerage-service/internal/core/port"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// Handlers собирает все обработчики, чтобы не раздувать сигнатуру NewServer.
type Handlers struct {
	Auth        *AuthHandler
	Search      *SearchHandler
	SavedSearch *SavedSearchHandler
	Property    *PropertyHandler
	Client      *ClientHandler
	CallLog     *CallLogHandler
	Calendar    *CalendarHandler
	Message     *MessageHandler
	Dashboard   *DashboardHandler
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, allowedOrigins []string, h Handlers, authMW *AuthMiddleware, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // 5 минут
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Get("/search", h.Search.Search)
		r.Get("/properties/{propertyID}", h.Property.Get)

		// --- Приватные маршруты ---
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)

			r.Route("/saved-searches", func(r chi.Router) {
				r.Get("/", h.SavedSearch.List)
				r.Post("/", h.SavedSearch.Create)
				r.Post("/{searchID}/apply", h.SavedSearch.Apply)
				r.Delete("/{searchID}", h.SavedSearch.Delete)
			})

			r.Route("/properties", func(r chi.Router) {
				r.Post("/", h.Property.Create)
				r.Get("/mine", h.Property.ListMine)
				r.Put("/{propertyID}", h.Property.Update)
				r.Delete("/{propertyID}", h.Property.Delete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Get("/{clientID}", h.Client.Get)
				r.Put("/{clientID}", h.Client.Update)
				r.Delete("/{clientID}", h.Client.Delete)
			})

			r.Route("/call-logs", func(r chi.Router) {
				r.Get("/", h.CallLog.List)
				r.Post("/", h.CallLog.Create)
				r.Get("/{logID}", h.CallLog.Get)
				r.Put("/{logID}", h.CallLog.Update)
				r.Delete("/{logID}", h.CallLog.Delete)
			})

			r.Route("/calendar/events", func(r chi.Router) {
				r.Get("/", h.Calendar.ListRange)
				r.Post("/", h.Calendar.Create)
				r.Get("/{eventID}", h.Calendar.Get)
				r.Put("/{eventID}", h.Calendar.Update)
				r.Delete("/{eventID}", h.Calendar.Delete)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.Message.Conversations)
				r.Post("/", h.Message.Send)
				r.Get("/{partnerID}", h.Message.Poll)
				r.Post("/{partnerID}/read", h.Message.MarkRead)
			})

			r.Get("/dashboard", h.Dashboard.Get)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
