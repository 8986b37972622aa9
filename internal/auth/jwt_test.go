// stellar-backend | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/core"
)

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(config.JWTConfig{
		Secret:            "test-secret-key-at-least-16-chars",
		AccessTokenExpire: time.Hour,
		Issuer:            "stellar-backend",
	})
	require.NoError(t, err)
	return m
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.issue("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestTokenManager_Tampered(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Issue("user-42")
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token+"x")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenManager_WrongKey(t *testing.T) {
	m := newTestTokenManager(t)

	other, err := NewTokenManager(config.JWTConfig{
		Secret:            "another-secret-key-16-chars-min",
		AccessTokenExpire: time.Hour,
		Issuer:            "stellar-backend",
	})
	require.NoError(t, err)

	token, err := other.Issue("user-42")
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := newTestTokenManager(t)

	_, err := m.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}
