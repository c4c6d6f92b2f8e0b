package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/constants"
)

func setupAuthProviderTest(t *testing.T) (*auth.JWTAuthProvider, string) {
	service := auth.NewJWTService(testJWTSettings())
	token, err := service.GenerateSessionToken(42, "test@example.com", "Test User")
	require.NoError(t, err)

	return auth.NewJWTAuthProvider(service), token
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	provider, token := setupAuthProviderTest(t)

	var gotUserID int64
	var gotEmail, gotName string
	handler := provider.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = auth.GetUserID(r.Context())
		gotEmail, _ = auth.GetEmail(r.Context())
		gotName, _ = auth.GetName(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set(constants.HeaderAuthorization, constants.BearerTokenPrefix+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "test@example.com", gotEmail)
	assert.Equal(t, "Test User", gotName)
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	provider, token := setupAuthProviderTest(t)

	handler := provider.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionTokenCookie, Value: token})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	provider, _ := setupAuthProviderTest(t)

	called := false
	handler := provider.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	settings := testJWTSettings()
	settings.SessionExpiry = -time.Minute
	service := auth.NewJWTService(settings)
	token, err := service.GenerateSessionToken(42, "test@example.com", "Test User")
	require.NoError(t, err)

	provider := auth.NewJWTAuthProvider(auth.NewJWTService(testJWTSettings()))
	handler := provider.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set(constants.HeaderAuthorization, constants.BearerTokenPrefix+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageBearerValue(t *testing.T) {
	provider, _ := setupAuthProviderTest(t)

	handler := provider.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called with a garbage token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set(constants.HeaderAuthorization, constants.BearerTokenPrefix+"garbage")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
