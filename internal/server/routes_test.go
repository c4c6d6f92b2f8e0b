package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/config"
	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/handlers"
	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/service"
	"github.com/postsblog/backend/internal/utils"
)

// stubAuthService satisfies handlers.AuthService with canned responses.
type stubAuthService struct{}

func (stubAuthService) Signup(ctx context.Context, signup *models.UserSignup) (*models.User, error) {
	user := models.NewUser(signup.Name, signup.Email)
	user.ID = 1
	return user, nil
}

func (stubAuthService) Login(ctx context.Context, creds *models.UserCredentials) (*service.LoginResult, error) {
	return &service.LoginResult{
		User:        &models.User{ID: 1, Name: "Test User", Email: creds.Email},
		AccessToken: "stub-token",
	}, nil
}

func (stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (stubAuthService) ConfirmPasswordReset(ctx context.Context, tokenString, newPassword string) error {
	return nil
}

func (stubAuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return &models.User{ID: id, Name: "Test User", Email: "test@example.com"}, nil
}

// stubHealthChecker always reports a healthy database.
type stubHealthChecker struct{}

func (stubHealthChecker) HealthCheck(ctx context.Context) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	utils.InitValidator()

	cfg := &config.AppConfig{
		App: config.AppSettings{Version: "test"},
		JWT: config.JWTSettings{
			Secret:        "test-secret",
			ResetSecret:   "test-secret",
			SessionExpiry: time.Hour,
			ResetExpiry:   100 * time.Second,
			Issuer:        "test-issuer",
		},
		CORS: config.CORSSettings{AllowedOrigins: []string{"*"}},
	}

	s := &Server{
		Config:     cfg,
		jwtService: auth.NewJWTService(&cfg.JWT),
		Handlers: &Handlers{
			UserHandler:    handlers.NewUserHandler(stubAuthService{}, cfg.JWT.SessionExpiry),
			GenericHandler: handlers.NewGenericHandler(stubHealthChecker{}, cfg.App.Version, ""),
		},
	}
	s.SetupRoutes()
	return s
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, constants.RouteHealth, "", http.StatusOK},
		{http.MethodGet, constants.RouteVersion, "", http.StatusOK},
		{http.MethodPost, constants.RouteSignup, `{"name":"Test","email":"test@example.com","password":"secret123"}`, http.StatusCreated},
		{http.MethodPost, constants.RouteLogin, `{"email":"test@example.com","password":"secret123"}`, http.StatusOK},
		{http.MethodPost, constants.RouteResetPassword, `{"email":"test@example.com"}`, http.StatusCreated},
		{http.MethodPost, constants.RouteUpdatePassword, `{"token":"tok","newPassword":"secret123"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
			if tt.body != "" {
				req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
			}
			w := httptest.NewRecorder()

			s.router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoutes_MeRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, constants.RouteMe, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_MeWithToken(t *testing.T) {
	s := newTestServer(t)

	token, err := s.jwtService.GenerateSessionToken(1, "test@example.com", "Test User")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, constants.RouteMe, nil)
	req.Header.Set(constants.HeaderAuthorization, constants.BearerTokenPrefix+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_UnknownPathAnswers404(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get(constants.HeaderContentType), "application/json")
}

func TestRoutes_WrongMethodAnswers405(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, constants.RouteSignup, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRoutes_CORSHeadersPresent(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, constants.RouteLogin, nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
