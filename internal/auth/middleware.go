package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/utils"
)

// ContextKey is the type used for context value keys to avoid collisions
// with keys set by other packages.
type ContextKey string

// Context keys for authenticated request values.
const (
	UserIDContextKey ContextKey = constants.UserIDContextKey
	NameContextKey   ContextKey = constants.NameContextKey
	EmailContextKey  ContextKey = constants.EmailContextKey
)

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDContextKey).(int64)
	return id, ok
}

// GetName extracts the authenticated user's name from the request context.
func GetName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(NameContextKey).(string)
	return name, ok
}

// GetEmail extracts the authenticated user's email from the request context.
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailContextKey).(string)
	return email, ok
}

// TokenValidator validates a session token string and returns its claims.
type TokenValidator interface {
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}

// JWTAuthProvider authenticates HTTP requests carrying a session token in
// either the Authorization header or the session cookie.
type JWTAuthProvider struct {
	validator TokenValidator
}

// NewJWTAuthProvider creates a new JWTAuthProvider using the given validator.
func NewJWTAuthProvider(validator TokenValidator) *JWTAuthProvider {
	return &JWTAuthProvider{validator: validator}
}

// extractToken pulls the session token from the Authorization header,
// falling back to the session cookie set at login.
func (p *JWTAuthProvider) extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get(constants.HeaderAuthorization)
	if strings.HasPrefix(header, constants.BearerTokenPrefix) {
		token := strings.TrimPrefix(header, constants.BearerTokenPrefix)
		if token != "" {
			return token, true
		}
	}

	cookie, err := r.Cookie(constants.SessionTokenCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

// Authenticate validates the request's session token and returns a request
// whose context carries the authenticated identity. The boolean result
// reports whether authentication succeeded; on failure the error response
// has already been written.
func (p *JWTAuthProvider) Authenticate(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	tokenString, ok := p.extractToken(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return r, false
	}

	claims, err := p.validator.ValidateSessionToken(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("Session token rejected")
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return r, false
	}

	ctx := r.Context()
	ctx = context.WithValue(ctx, UserIDContextKey, claims.UserID)
	ctx = context.WithValue(ctx, NameContextKey, claims.Name)
	ctx = context.WithValue(ctx, EmailContextKey, claims.Email)

	return r.WithContext(ctx), true
}

// RequireAuth wraps a handler so it only runs for authenticated requests.
func (p *JWTAuthProvider) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, ok := p.Authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}
