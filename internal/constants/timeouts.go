package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout  = 10 * time.Second
	DBHealthCheckTimeout = 5 * time.Second
	DBConnMaxLifetime    = 1 * time.Hour
	DBConnMaxIdleTime    = 30 * time.Minute
)

// Token Lifetimes
const (
	// DefaultSessionTokenExpiry is how long a login session token stays valid.
	DefaultSessionTokenExpiry = 1 * time.Hour

	// DefaultResetTokenExpiry is how long a password reset token stays valid.
	// Reset tokens are not persisted, so the short window is the only
	// invalidation mechanism.
	DefaultResetTokenExpiry = 100 * time.Second
)
