// stellar-backend | 2026
// handler_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/middleware"
)

type accountAdapter struct {
	store *fakeUserStore
}

func (a accountAdapter) AccountByID(ctx context.Context, id string) (*middleware.Account, error) {
	p, err := a.store.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &middleware.Account{ID: p.ID, Email: p.Email, Active: p.Active, Admin: p.Admin}, nil
}

func (a accountAdapter) AccountByAPIKey(context.Context, string) (*middleware.Account, error) {
	return nil, core.ErrNotFound
}

func newTestRouter(t *testing.T) (http.Handler, *Service, *fakeUserStore) {
	t.Helper()
	svc, store := newTestService(t)
	tokens := svc.tokens

	authenticate := middleware.Authenticator(tokens, accountAdapter{store: store})
	return NewHandler(svc).Routes(authenticate), svc, store
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Register(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("success", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/register", "",
			`{"name":"Orion","email":"orion@example.com","password":"abc123"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Success bool         `json:"success"`
			Data    UserResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.APIKey)
		assert.False(t, resp.Data.IsActive)

		// Registration never hands out a session token or the hash.
		assert.NotContains(t, rec.Body.String(), "token")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("validation failures aggregate", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/register", "",
			`{"name":"Orion 7","email":"not-an-email","password":"toolongpassword"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "name can contain only alphabetical characters")
		assert.Contains(t, body, "Please enter valid email address")
		assert.Contains(t, body, "password must be exactly 6 characters")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/register", "", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ProtectedRoutes(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterRequest{
		Name:     "Orion",
		Email:    "orion@example.com",
		Password: "abc123",
	})
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, LoginRequest{Email: "orion@example.com", Password: "abc123"})
	require.NoError(t, err)

	t.Run("profile without token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/profile", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not authorized to access this route")
	})

	t.Run("profile with token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/profile", token, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), p.APIKey)
	})

	t.Run("payment then activate", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/payment-balance", token, `{"payment":150}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":150`)

		rec = doJSON(t, router, http.MethodPut, "/activate", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ActivateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, p.APIKey, resp.APIKey)
		assert.Equal(t, "Your profile successfully activated", resp.Message)
	})

	t.Run("activate with empty balance", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/activate", token, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Your balance is less than 100")
	})

	t.Run("payment requires amount", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/payment-balance", token, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "payment is required")
	})
}
