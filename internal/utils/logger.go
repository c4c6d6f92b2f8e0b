package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/postsblog/backend/internal/config"
)

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	// Set global log level
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		// Default to info level if invalid
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Console output in development, JSON everywhere else
	logger := zerolog.New(os.Stdout)
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	log.Logger = logger.With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogDBQuery logs a database query with execution time and outcome.
// Password hashes and other secrets must be redacted by the caller
// before being passed as args.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug().
		Str("query", strings.Join(strings.Fields(query), " ")).
		Interface("args", args).
		Dur("duration", duration)

	if err != nil {
		event = log.Warn().
			Str("query", strings.Join(strings.Fields(query), " ")).
			Dur("duration", duration).
			Err(err)
	}

	event.Msg("Database query")
}

// LogAuth logs an authentication event in a consistent format.
func LogAuth(event, email string, success bool, reason string) {
	logEvent := log.Info()
	if !success {
		logEvent = log.Warn()
	}

	logEvent.
		Str("event", event).
		Str("email", MaskEmail(email)).
		Bool("success", success)

	if reason != "" {
		logEvent.Str("reason", reason)
	}

	logEvent.Msg("Authentication event")
}
