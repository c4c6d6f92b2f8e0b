package models

import (
	"time"
)

// User represents a registered user of the Posts Blog application.
// It contains authentication information and core user attributes.
type User struct {
	ID           int64     `json:"id" db:"user_id"`
	Name         string    `json:"name" db:"name" validate:"required,max=100"`
	Email        string    `json:"email" db:"email" validate:"required,email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewUser creates a new User instance with the given name and email.
// The password hash is populated later during the signup process.
func NewUser(name, email string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// PublicProfile is the subset of user fields that is safe to return
// to clients. The password hash never leaves the server.
type PublicProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserSignup represents the data required for user registration.
// The password must be alphanumeric, matching the signup form's rules.
type UserSignup struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,alphanum"`
}

// UserCredentials represents the login credentials provided by a user.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetRequest represents a request to start the password reset flow.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordUpdate represents a request to complete the password reset flow.
type PasswordUpdate struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,alphanum"`
}
