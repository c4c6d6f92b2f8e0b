package handlers

import (
	"context"

	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/service"
)

// AuthService defines the operations the auth handlers need from the
// service layer. Handlers depend on this interface so tests can inject
// mock implementations.
type AuthService interface {
	Signup(ctx context.Context, signup *models.UserSignup) (*models.User, error)
	Login(ctx context.Context, creds *models.UserCredentials) (*service.LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, tokenString, newPassword string) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}
