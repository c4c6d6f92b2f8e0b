package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsblog/backend/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	second, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("secret123", hash))
	assert.False(t, auth.VerifyPassword("wrong-password", hash))
	assert.False(t, auth.VerifyPassword("", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, auth.VerifyPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, auth.VerifyPassword("secret123", ""))
}
