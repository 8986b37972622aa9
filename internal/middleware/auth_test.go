// stellar-backend | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/stellar-backend/internal/core"
)

type fakeVerifier struct {
	userID string
	err    error
}

func (f fakeVerifier) VerifyToken(_ context.Context, _ string) (string, error) {
	return f.userID, f.err
}

type fakeAccounts struct {
	byID  map[string]*Account
	byKey map[string]*Account
}

func (f fakeAccounts) AccountByID(_ context.Context, id string) (*Account, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, core.ErrNotFound
}

func (f fakeAccounts) AccountByAPIKey(_ context.Context, key string) (*Account, error) {
	if a, ok := f.byKey[key]; ok {
		return a, nil
	}
	return nil, core.ErrNotFound
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator(t *testing.T) {
	accounts := fakeAccounts{byID: map[string]*Account{
		"u1": {ID: "u1", Email: "orion@example.com"},
	}}

	tests := []struct {
		name       string
		header     string
		verifier   fakeVerifier
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			verifier:   fakeVerifier{userID: "u1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			verifier:   fakeVerifier{userID: "u1"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer tok",
			verifier:   fakeVerifier{err: core.ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token for deleted account",
			header:     "Bearer tok",
			verifier:   fakeVerifier{userID: "ghost"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid session",
			header:     "Bearer tok",
			verifier:   fakeVerifier{userID: "u1"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit bool
			handler := Authenticator(tt.verifier, accounts)(okHandler(&hit))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, hit)
		})
	}
}

func TestAuthenticator_AttachesAccount(t *testing.T) {
	accounts := fakeAccounts{byID: map[string]*Account{
		"u1": {ID: "u1", Email: "orion@example.com", Admin: true},
	}}

	var gotAccount *Account
	var gotID string
	handler := Authenticator(fakeVerifier{userID: "u1"}, accounts)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccount = GetAccount(r.Context())
			gotID = GetUserID(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, gotAccount)
	assert.Equal(t, "u1", gotAccount.ID)
	assert.Equal(t, "u1", gotID)
	assert.True(t, gotAccount.Admin)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		account    *Account
		wantStatus int
	}{
		{
			name:       "no session",
			account:    nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-admin",
			account:    &Account{ID: "u1"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin",
			account:    &Account{ID: "u1", Admin: true},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit bool
			handler := RequireAdmin(okHandler(&hit))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.account != nil {
				ctx := context.WithValue(req.Context(), AccountKey, tt.account)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	accounts := fakeAccounts{byKey: map[string]*Account{
		"active-key":   {ID: "u1", Active: true},
		"inactive-key": {ID: "u2", Active: false},
	}}

	tests := []struct {
		name        string
		key         string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing key",
			key:         "",
			wantStatus:  http.StatusForbidden,
			wantMessage: "No API key to access this route",
		},
		{
			name:        "unknown key",
			key:         "bogus",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No user found by this API key",
		},
		{
			name:        "inactive account",
			key:         "inactive-key",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Please activate your status to get response",
		},
		{
			name:       "active account",
			key:        "active-key",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit bool
			handler := RequireAPIKey(accounts)(okHandler(&hit))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.key != "" {
				req.Header.Set("apikey", tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMessage)
			}
			assert.Equal(t, tt.wantStatus == http.StatusOK, hit)
		})
	}
}
