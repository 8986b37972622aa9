// stellar-backend | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "abc123")

	// Same password, different salt.
	hash2, err := HashPassword("abc123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("abc123", hash))
	assert.False(t, VerifyPassword("abc124", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("abc123", "not-a-hash"))
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)

	assert.True(t, VerifyPasswordTimingSafe("abc123", &hash))
	assert.False(t, VerifyPasswordTimingSafe("wrongpw", &hash))

	// Nil hash burns a verification but never matches.
	assert.False(t, VerifyPasswordTimingSafe("abc123", nil))
}

func TestGenerateAPIKey(t *testing.T) {
	key := GenerateAPIKey()

	_, err := uuid.Parse(key)
	require.NoError(t, err)

	assert.NotEqual(t, key, GenerateAPIKey())
}
