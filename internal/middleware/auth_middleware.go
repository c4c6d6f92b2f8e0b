// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"

	"github.com/postsblog/backend/internal/auth"
)

// JWTAuth is a middleware that requires a valid session token on every
// request it wraps. The token may arrive in the Authorization header or
// the session cookie.
func JWTAuth(validator auth.TokenValidator) func(http.Handler) http.Handler {
	provider := auth.NewJWTAuthProvider(validator)
	return provider.RequireAuth
}
