// Package server wires the application together and manages the HTTP
// server lifecycle: dependency construction, routing, startup, and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/config"
	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/database"
	"github.com/postsblog/backend/internal/handlers"
	"github.com/postsblog/backend/internal/repository"
	"github.com/postsblog/backend/internal/service"
	"github.com/postsblog/backend/migrations"
	"github.com/postsblog/backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// UserHandler serves the account endpoints
	UserHandler *handlers.UserHandler

	// GenericHandler serves the operational endpoints
	GenericHandler *handlers.GenericHandler
}

// Server represents the API server. It owns the database pool, the
// router, and the underlying HTTP server, and coordinates startup and
// shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// jwtService issues and validates tokens
	jwtService *auth.JWTService

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows the dependency order: database, auth providers,
// repositories, services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.jwtService = auth.NewJWTService(&cfg.JWT)

	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects to the database and runs pending migrations so
// the schema is in place before any request is served.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(&s.Config.Database)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Development databases get a demo account for frontend work.
	if s.Config.App.Environment == constants.EnvDevelopment {
		seeder := scripts.NewSeeder(db)
		if err := seeder.SeedDatabase(context.Background()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return nil
}

// setupHandlers builds the repository, service, and handler chain.
func (s *Server) setupHandlers() {
	userRepo := repository.NewUserRepository(s.Db)
	emailService := service.NewEmailService(&s.Config.Mail)
	authService := service.NewAuthService(userRepo, s.jwtService, emailService)

	s.Handlers = &Handlers{
		UserHandler:    handlers.NewUserHandler(authService, s.Config.JWT.SessionExpiry),
		GenericHandler: handlers.NewGenericHandler(s.Db, s.Config.App.Version, ""),
	}
}

// Start starts the HTTP server and blocks until a fatal server error or
// a shutdown signal (SIGINT, SIGTERM) arrives. On a signal the server is
// shut down gracefully within the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight
// requests before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
