// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings and define security parameters. Changes to these values may
// significantly impact application behavior and security.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultJWTIssuer is the issuer claim written into signed tokens.
	DefaultJWTIssuer = "postsblog-api"

	// DefaultFrontendURL is the base URL embedded in password reset links.
	DefaultFrontendURL = "http://localhost:3000/reset-password"

	// DefaultMailFromName is the display name used on outbound email.
	DefaultMailFromName = "Posts Blog"

	// DefaultMailFromAddress is the sender address used on outbound email.
	DefaultMailFromAddress = "no-reply@postsblog.dev"
)

// Request Limits define boundaries for incoming requests.
const (
	// MaxRequestBodySize is the maximum accepted request body size in bytes.
	MaxRequestBodySize = 1 << 20 // 1MB
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production deployment.
	EnvProduction = "production"
)
