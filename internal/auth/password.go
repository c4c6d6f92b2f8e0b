package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/postsblog/backend/internal/constants"
)

// HashPassword generates a bcrypt hash of the provided password.
// The salt is generated internally and encoded into the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// The comparison is constant-time inside bcrypt.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
