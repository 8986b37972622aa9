// stellar-backend | 2026
// response_test.go

package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPaginated(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		limit         int
		total         int
		wantPageCount float64
		wantNextPage  any
	}{
		{
			name:          "first of many pages",
			page:          1,
			limit:         2,
			total:         10,
			wantPageCount: 5,
			wantNextPage:  float64(2),
		},
		{
			name:          "last page",
			page:          5,
			limit:         2,
			total:         10,
			wantPageCount: 5,
			wantNextPage:  nil,
		},
		{
			name:          "fractional page count",
			page:          1,
			limit:         2,
			total:         3,
			wantPageCount: 1.5,
			wantNextPage:  nil,
		},
		{
			name:          "fractional with next page",
			page:          1,
			limit:         2,
			total:         5,
			wantPageCount: 2.5,
			wantNextPage:  float64(2),
		},
		{
			name:          "empty result",
			page:          1,
			limit:         2,
			total:         0,
			wantPageCount: 0,
			wantNextPage:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Paginated(rec, []string{}, tt.page, tt.limit, tt.total)

			assert.Equal(t, http.StatusOK, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, true, body["success"])
			assert.Equal(t, tt.wantPageCount, body["pageCount"])
			assert.Equal(t, float64(tt.page), body["currentPage"])
			assert.Equal(t, tt.wantNextPage, body["nextPage"])
		})
	}
}

func TestJSONError(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSONError(rec, NotFoundError("Star Not Found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		errBody := body["error"].(map[string]any)
		assert.Equal(t, "Star Not Found", errBody["message"])
		assert.Equal(t, float64(http.StatusNotFound), errBody["statusCode"])
		assert.Equal(t, CodeNotFound, errBody["code"])
	})

	t.Run("unknown error becomes opaque 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSONError(rec, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		errBody := body["error"].(map[string]any)
		assert.Equal(t, "Server Error", errBody["message"])
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	err := InsufficientBalanceError(100, 30)

	assert.Equal(t, "Your balance is less than 100. You need 70", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, CodeInsufficientBalance, err.Code)
}
