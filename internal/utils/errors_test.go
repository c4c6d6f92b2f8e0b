package utils_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/postsblog/backend/internal/utils"
)

func TestParseError_PassesThroughAppError(t *testing.T) {
	original := utils.NewDuplicateEmailError()

	parsed := utils.ParseError(original)

	assert.Same(t, original, parsed)
}

func TestParseError_UnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("signup failed: %w", utils.NewDuplicateEmailError())

	parsed := utils.ParseError(wrapped)

	assert.Equal(t, 409, parsed.StatusCode)
	assert.True(t, utils.IsDuplicateError(parsed))
}

func TestParseError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
	}{
		{"not found", utils.ErrNotFound, 401},
		{"invalid credentials", utils.ErrInvalidCredentials, 401},
		{"expired token", utils.ErrExpiredToken, 401},
		{"invalid token", utils.ErrInvalidToken, 401},
		{"duplicate", utils.ErrDuplicate, 409},
		{"delivery failed", utils.ErrDeliveryFailed, 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := utils.ParseError(tt.err)
			assert.Equal(t, tt.statusCode, parsed.StatusCode)
		})
	}
}

func TestParseError_PQUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "idx_users_email"}

	parsed := utils.ParseError(pqErr)

	assert.Equal(t, 409, parsed.StatusCode)
	assert.True(t, utils.IsDuplicateError(parsed))
	assert.NotEmpty(t, parsed.DevInfo)
}

func TestParseError_PQNotNullViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23502", Column: "email"}

	parsed := utils.ParseError(pqErr)

	assert.Equal(t, 422, parsed.StatusCode)
	assert.Contains(t, parsed.Message, "email")
}

func TestParseError_NoRows(t *testing.T) {
	parsed := utils.ParseError(sql.ErrNoRows)

	assert.Equal(t, 401, parsed.StatusCode)
	assert.True(t, utils.IsNotFoundError(parsed))
}

func TestParseError_UnknownErrorBecomesInternal(t *testing.T) {
	parsed := utils.ParseError(errors.New("connection refused"))

	assert.Equal(t, 500, parsed.StatusCode)
	assert.Equal(t, "connection refused", parsed.DevInfo)
}

func TestNewNotFoundError_AnswersUnauthorized(t *testing.T) {
	err := utils.NewNotFoundError("")

	assert.Equal(t, 401, err.StatusCode)
	assert.Equal(t, "A user with this email could not be found", err.Message)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestNewValidationErrors_CarriesFieldData(t *testing.T) {
	err := utils.NewValidationErrors([]utils.FieldError{
		{Field: "email", Message: "Must be a valid email address"},
		{Field: "password", Message: "Must be at least 6 characters long"},
	})

	assert.Equal(t, 422, err.StatusCode)
	assert.Len(t, err.Data, 2)
	assert.True(t, utils.IsValidationError(err))
}

func TestStatusCode_NonAppError(t *testing.T) {
	assert.Equal(t, 500, utils.StatusCode(errors.New("plain error")))
}
