package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/repository"
	"github.com/postsblog/backend/internal/utils"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, encodedHash string) bool
}

// TokenIssuer generates and validates the tokens the auth flows depend on.
type TokenIssuer interface {
	GenerateSessionToken(userID int64, email, name string) (string, error)
	GenerateResetToken(email string) (string, error)
	ValidateResetToken(tokenString string) (*auth.ResetClaims, error)
}

// bcryptHasher adapts the package-level hashing functions to the
// PasswordHasher interface so tests can substitute a fake.
type bcryptHasher struct{}

func (bcryptHasher) HashPassword(password string) (string, error) {
	return auth.HashPassword(password)
}

func (bcryptHasher) VerifyPassword(password, encodedHash string) bool {
	return auth.VerifyPassword(password, encodedHash)
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	User        *models.User
	AccessToken string
}

// AuthService implements the signup, login, and password reset flows.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	mailer   Mailer
	hasher   PasswordHasher
}

// NewAuthService creates a new AuthService with its dependencies.
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, mailer Mailer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		hasher:   bcryptHasher{},
	}
}

// Signup registers a new user account. The password is hashed before
// anything touches the database; the plaintext is never stored or logged.
// Email uniqueness is enforced by the database so concurrent signups with
// the same address cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, signup *models.UserSignup) (*models.User, error) {
	hash, err := s.hasher.HashPassword(signup.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(signup.Name, signup.Email)
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		utils.LogAuth("signup", signup.Email, false, "storage error")
		return nil, err
	}

	utils.LogAuth("signup", user.Email, true, "")
	return user, nil
}

// Login verifies the given credentials and issues a session token.
// An unknown email and a wrong password produce distinct messages but the
// same unauthorized status.
func (s *AuthService) Login(ctx context.Context, creds *models.UserCredentials) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		utils.LogAuth("login", creds.Email, false, "user not found")
		return nil, err
	}

	if !s.hasher.VerifyPassword(creds.Password, user.PasswordHash) {
		utils.LogAuth("login", creds.Email, false, "wrong password")
		return nil, utils.NewInvalidCredentialsError()
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	utils.LogAuth("login", user.Email, true, "")
	return &LoginResult{
		User:        user,
		AccessToken: token,
	}, nil
}

// RequestPasswordReset issues a short-lived reset token for the account
// with the given email and mails a reset link to it. Mail delivery is
// awaited so a provider outage surfaces as an error instead of a silent
// success.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		utils.LogAuth("password_reset_request", email, false, "user not found")
		return err
	}

	token, err := s.tokens.GenerateResetToken(user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		utils.LogAuth("password_reset_request", email, false, "mail delivery failed")
		return err
	}

	utils.LogAuth("password_reset_request", user.Email, true, "")
	return nil
}

// ConfirmPasswordReset validates a reset token and replaces the password
// of the account the token was issued for. The token's own expiry is the
// only invalidation mechanism; a token remains usable until it expires.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenString, newPassword string) error {
	claims, err := s.tokens.ValidateResetToken(tokenString)
	if err != nil {
		utils.LogAuth("password_reset_confirm", "", false, "invalid token")
		return err
	}

	hash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, claims.Email, hash); err != nil {
		utils.LogAuth("password_reset_confirm", claims.Email, false, "storage error")
		return err
	}

	utils.LogAuth("password_reset_confirm", claims.Email, true, "")
	return nil
}

// GetUserByID returns the user with the given ID. Used by the
// authenticated profile endpoint.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		log.Debug().Int64("user_id", id).Err(err).Msg("User lookup failed")
		return nil, err
	}
	return user, nil
}
