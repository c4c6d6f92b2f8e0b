package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsblog/backend/internal/auth"
	"github.com/postsblog/backend/internal/config"
	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/service"
	"github.com/postsblog/backend/internal/utils"
)

// MockUserRepository is a configurable mock for the user repository.
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	GetByIDFunc        func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	ChangePasswordFunc func(ctx context.Context, email, passwordHash string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFunc(ctx, email)
}

func (m *MockUserRepository) ChangePassword(ctx context.Context, email, passwordHash string) error {
	return m.ChangePasswordFunc(ctx, email, passwordHash)
}

// MockMailer records password reset emails instead of sending them.
type MockMailer struct {
	SendFunc  func(toEmail, toName, token string) error
	SentTo    string
	SentToken string
}

func (m *MockMailer) SendPasswordResetEmail(toEmail, toName, token string) error {
	m.SentTo = toEmail
	m.SentToken = token
	if m.SendFunc != nil {
		return m.SendFunc(toEmail, toName, token)
	}
	return nil
}

func testTokenService() *auth.JWTService {
	return auth.NewJWTService(&config.JWTSettings{
		Secret:        "test-session-secret",
		ResetSecret:   "test-reset-secret",
		SessionExpiry: time.Hour,
		ResetExpiry:   100 * time.Second,
		Issuer:        "test-issuer",
	})
}

func TestAuthService_Signup(t *testing.T) {
	var created *models.User
	repo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	user, err := svc.Signup(context.Background(), &models.UserSignup{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Test User", created.Name)
	assert.Equal(t, "test@example.com", created.Email)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.True(t, auth.VerifyPassword("secret123", created.PasswordHash))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) error {
			return utils.NewDuplicateEmailError()
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	user, err := svc.Signup(context.Background(), &models.UserSignup{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, utils.IsDuplicateError(err))
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           1,
				Name:         "Test User",
				Email:        email,
				PasswordHash: hash,
			}, nil
		},
	}
	tokens := testTokenService()
	svc := service.NewAuthService(repo, tokens, &MockMailer{})

	result, err := svc.Login(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Test User", result.User.Name)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := tokens.ValidateSessionToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	result, err := svc.Login(context.Background(), &models.UserCredentials{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 401, utils.StatusCode(err))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, utils.NewNotFoundError("A user with this email could not be found")
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	result, err := svc.Login(context.Background(), &models.UserCredentials{
		Email:    "missing@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 401, utils.StatusCode(err))
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Name: "Test User", Email: email}, nil
		},
	}
	mailer := &MockMailer{}
	tokens := testTokenService()
	svc := service.NewAuthService(repo, tokens, mailer)

	err := svc.RequestPasswordReset(context.Background(), "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", mailer.SentTo)
	require.NotEmpty(t, mailer.SentToken)

	claims, err := tokens.ValidateResetToken(mailer.SentToken)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, utils.NewNotFoundError("A user with this email could not be found")
		},
	}
	mailer := &MockMailer{}
	svc := service.NewAuthService(repo, testTokenService(), mailer)

	err := svc.RequestPasswordReset(context.Background(), "missing@example.com")

	assert.Error(t, err)
	assert.Empty(t, mailer.SentTo)
}

func TestAuthService_RequestPasswordReset_DeliveryFailed(t *testing.T) {
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Name: "Test User", Email: email}, nil
		},
	}
	mailer := &MockMailer{
		SendFunc: func(toEmail, toName, token string) error {
			return utils.NewDeliveryFailedError(errors.New("provider down"))
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), mailer)

	err := svc.RequestPasswordReset(context.Background(), "test@example.com")

	assert.Error(t, err)
	assert.Equal(t, 502, utils.StatusCode(err))
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	tokens := testTokenService()
	token, err := tokens.GenerateResetToken("test@example.com")
	require.NoError(t, err)

	var changedEmail, changedHash string
	repo := &MockUserRepository{
		ChangePasswordFunc: func(ctx context.Context, email, passwordHash string) error {
			changedEmail = email
			changedHash = passwordHash
			return nil
		},
	}
	svc := service.NewAuthService(repo, tokens, &MockMailer{})

	err = svc.ConfirmPasswordReset(context.Background(), token, "newsecret123")

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", changedEmail)
	assert.True(t, auth.VerifyPassword("newsecret123", changedHash))
}

func TestAuthService_ConfirmPasswordReset_ExpiredToken(t *testing.T) {
	expiredTokens := auth.NewJWTService(&config.JWTSettings{
		Secret:        "test-session-secret",
		ResetSecret:   "test-reset-secret",
		SessionExpiry: time.Hour,
		ResetExpiry:   -time.Minute,
		Issuer:        "test-issuer",
	})
	token, err := expiredTokens.GenerateResetToken("test@example.com")
	require.NoError(t, err)

	repo := &MockUserRepository{
		ChangePasswordFunc: func(ctx context.Context, email, passwordHash string) error {
			t.Fatal("password must not change with an expired token")
			return nil
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	err = svc.ConfirmPasswordReset(context.Background(), token, "newsecret123")

	assert.Error(t, err)
	assert.Equal(t, 401, utils.StatusCode(err))
}

func TestAuthService_ConfirmPasswordReset_TamperedToken(t *testing.T) {
	svc := service.NewAuthService(&MockUserRepository{}, testTokenService(), &MockMailer{})

	err := svc.ConfirmPasswordReset(context.Background(), "not.a.token", "newsecret123")

	assert.Error(t, err)
	assert.Equal(t, 401, utils.StatusCode(err))
}

func TestAuthService_GetUserByID(t *testing.T) {
	repo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Test User", Email: "test@example.com"}, nil
		},
	}
	svc := service.NewAuthService(repo, testTokenService(), &MockMailer{})

	user, err := svc.GetUserByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}
