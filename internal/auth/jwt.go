// stellar-backend | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/core"
)

// TokenManager issues and verifies the signed session tokens handed out by
// login, registration and password change. Tokens are HS256-signed with the
// process-wide secret from configuration.
type TokenManager struct {
	key      jwk.Key
	issuer   string
	tokenTTL time.Duration
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	return &TokenManager{
		key:      key,
		issuer:   cfg.Issuer,
		tokenTTL: cfg.AccessTokenExpire,
	}, nil
}

// Issue mints a token whose subject is the account id.
func (m *TokenManager) Issue(userID string) (string, error) {
	return m.issue(userID, m.tokenTTL)
}

func (m *TokenManager) issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Subject(userID).
		Issuer(m.issuer).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		JwtID(uuid.New().String()).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

// VerifyToken validates signature, expiry and issuer, and returns the account
// id carried in the subject claim.
func (m *TokenManager) VerifyToken(ctx context.Context, raw string) (string, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithIssuer(m.issuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return "", core.ErrTokenExpired
		}
		return "", core.ErrTokenInvalid
	}

	sub, ok := token.Subject()
	if !ok || sub == "" {
		return "", core.ErrTokenInvalid
	}
	return sub, nil
}

func isTokenExpiredError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "exp") && strings.Contains(msg, "not satisfied")
}
