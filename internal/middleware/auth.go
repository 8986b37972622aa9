// stellar-backend | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/astralhq/stellar-backend/internal/core"
)

const (
	AccountKey contextKey = "account"
	UserIDKey  contextKey = "user_id"
)

// TokenVerifier decodes a signed session token back to the user identifier.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AccountSource resolves accounts for the guards. Implemented by the user
// service; kept minimal here to avoid an import cycle.
type AccountSource interface {
	AccountByID(ctx context.Context, id string) (*Account, error)
	AccountByAPIKey(ctx context.Context, key string) (*Account, error)
}

// Account is the slice of a user record the guards need.
type Account struct {
	ID     string
	Email  string
	Name   string
	Admin  bool
	Active bool
}

// Authenticator is the session guard: bearer token -> verified user id ->
// account loaded from the store and attached to the request context. Any
// failure short-circuits with a 401 envelope.
func Authenticator(
	verifier TokenVerifier,
	accounts AccountSource,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			userID, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			account, err := accounts.AccountByID(r.Context(), userID)
			if err != nil {
				core.JSONError(w, core.UnauthorizedError("Unauthorized"))
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, AccountKey, account)
			ctx = context.WithValue(ctx, UserIDKey, account.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is the admin guard. It expects the session guard to have run
// already and attached an account.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := GetAccount(r.Context())

		if account == nil {
			core.JSONError(w, core.UnauthorizedError(""))
			return
		}

		if !account.Admin {
			core.JSONError(w, core.ForbiddenError(
				"This route can be access only admin status users",
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAPIKey is the API-key guard used on catalog read routes. It checks
// the key resolves to an active account but attaches nothing downstream.
func RequireAPIKey(accounts AccountSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("apikey")

			if key == "" {
				core.JSONError(w, core.ForbiddenError(
					"No API key to access this route",
				))
				return
			}

			account, err := accounts.AccountByAPIKey(r.Context(), key)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.JSONError(w, core.BadCredentialError(
						"No user found by this API key",
					))
					return
				}
				core.InternalServerError(w, err)
				return
			}

			if !account.Active {
				core.JSONError(w, core.ForbiddenError(
					"Please activate your status to get response",
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetAccount(ctx context.Context) *Account {
	if account, ok := ctx.Value(AccountKey).(*Account); ok {
		return account
	}
	return nil
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}
