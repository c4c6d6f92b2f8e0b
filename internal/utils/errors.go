package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/postsblog/backend/internal/constants"
)

// Custom error types for the application
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden access")
	ErrBadRequest         = errors.New("invalid request")
	ErrInternalServer     = errors.New("internal server error")
	ErrValidation         = errors.New("validation error")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDeliveryFailed     = errors.New("delivery failed")
)

// FieldError describes a single validation failure for one request field.
// A slice of these is returned in the `data` member of 422 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error with additional context
type AppError struct {
	Err        error        // The underlying error
	StatusCode int          // HTTP status code
	Message    string       // User-friendly error message
	DevInfo    string       // Additional information for developers
	Data       []FieldError // Per-field validation errors, if any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Data) == 1 {
		return fmt.Sprintf("%s: %s", e.Data[0].Field, e.Data[0].Message)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given error and status code
func New(err error, statusCode int, message string) *AppError {
	return &AppError{
		Err:        err,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a 422 error for a single request field
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: constants.StatusUnprocessableEntity,
		Message:    constants.MsgValidationFailed,
		Data:       []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a 422 error carrying multiple field errors
func NewValidationErrors(fieldErrors []FieldError) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: constants.StatusUnprocessableEntity,
		Message:    constants.MsgValidationFailed,
		Data:       fieldErrors,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: constants.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError creates a 401 error for a missing account.
// The authentication endpoints deliberately answer 401 rather than 404 when
// an email has no account, so the status lives here with the constructor.
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = constants.MsgUserNotFound
	}
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: constants.StatusUnauthorized,
		Message:    message,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	return &AppError{
		Err:        ErrUnauthorized,
		StatusCode: constants.StatusUnauthorized,
		Message:    message,
	}
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: constants.StatusInternalServerError,
		Message:    constants.MsgInternalServerError,
		DevInfo:    devInfo,
	}
}

// NewDuplicateEmailError creates a 409 error for signup conflicts
func NewDuplicateEmailError() *AppError {
	return &AppError{
		Err:        ErrDuplicate,
		StatusCode: constants.StatusConflict,
		Message:    constants.MsgDuplicateEmail,
	}
}

// NewInvalidCredentialsError creates a 401 error for a rejected password
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Err:        ErrInvalidCredentials,
		StatusCode: constants.StatusUnauthorized,
		Message:    constants.MsgWrongPassword,
	}
}

// NewExpiredTokenError creates a new expired token error
func NewExpiredTokenError() *AppError {
	return &AppError{
		Err:        ErrExpiredToken,
		StatusCode: constants.StatusUnauthorized,
		Message:    constants.MsgInvalidResetToken,
	}
}

// NewInvalidTokenError creates a new invalid token error
func NewInvalidTokenError() *AppError {
	return &AppError{
		Err:        ErrInvalidToken,
		StatusCode: constants.StatusUnauthorized,
		Message:    constants.MsgInvalidResetToken,
	}
}

// NewDeliveryFailedError creates a 502 error for a failed outbound email
func NewDeliveryFailedError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrDeliveryFailed,
		StatusCode: constants.StatusBadGateway,
		Message:    constants.MsgDeliveryFailed,
		DevInfo:    devInfo,
	}
}

// ParseError attempts to parse various types of errors into an AppError
func ParseError(err error) *AppError {
	// If it's already an AppError, return it
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Check for specific error types
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("")
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("")
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrValidation):
		return NewValidationError("", err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewDuplicateEmailError()
	case errors.Is(err, ErrInvalidCredentials):
		return NewInvalidCredentialsError()
	case errors.Is(err, ErrExpiredToken):
		return NewExpiredTokenError()
	case errors.Is(err, ErrInvalidToken):
		return NewInvalidTokenError()
	case errors.Is(err, ErrDeliveryFailed):
		return NewDeliveryFailedError(err)
	}

	// Check for PostgreSQL-specific errors
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case constants.PGUniqueViolation:
			return &AppError{
				Err:        ErrDuplicate,
				StatusCode: constants.StatusConflict,
				Message:    constants.MsgDuplicateEmail,
				DevInfo:    pqErr.Error(),
			}
		case constants.PGNotNullViolation:
			return &AppError{
				Err:        ErrValidation,
				StatusCode: constants.StatusUnprocessableEntity,
				Message:    fmt.Sprintf("The %s field cannot be empty", pqErr.Column),
				DevInfo:    pqErr.Error(),
			}
		}
	}

	// Check for general database-specific error patterns
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint"):
		return &AppError{
			Err:        ErrDuplicate,
			StatusCode: constants.StatusConflict,
			Message:    constants.MsgDuplicateEmail,
			DevInfo:    err.Error(),
		}
	case strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows"):
		return NewNotFoundError("")
	}

	// Default to internal server error
	return NewInternalServerError(err)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrNotFound)
	}
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if an error is a duplicate resource error
func IsDuplicateError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrDuplicate)
	}
	return errors.Is(err, ErrDuplicate)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return constants.StatusInternalServerError
}
