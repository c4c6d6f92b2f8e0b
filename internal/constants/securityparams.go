package constants

// Context Key Names
const (
	UserIDContextKey    = "user_id"
	NameContextKey      = "name"
	EmailContextKey     = "email"
	RequestIDContextKey = "request_id"
)

// Auth Token Types
const (
	TokenTypeSession = "session"
	TokenTypeReset   = "reset"
)

// Password Validation
const (
	MinPasswordLength = 6
	MaxNameLength     = 100
	MaxEmailLength    = 255
)

// Password Hashing
const (
	// BcryptCost is the bcrypt work factor applied when hashing passwords.
	BcryptCost = 12
)

// Cookie Names
const (
	// SessionTokenCookie is the HTTP-only cookie that carries the session token.
	SessionTokenCookie = "jwtoken"
)

// Authorization Header
const (
	BearerTokenPrefix = "Bearer "
)
