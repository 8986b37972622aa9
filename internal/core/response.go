// stellar-backend | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"`
}

// PaginatedEnvelope mirrors the list-response shape of the public API:
// pageCount is fractional (total/limit, not a ceiling) and nextPage is null
// once total/limit drops below page+1.
type PaginatedEnvelope struct {
	Success     bool    `json:"success"`
	PageCount   float64 `json:"pageCount"`
	CurrentPage int     `json:"currentPage"`
	NextPage    *int    `json:"nextPage"`
	Data        any     `json:"data"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, successEnvelope{Success: true, Data: data})
}

func OKMessage(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, messageEnvelope{Success: true, Message: message})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, limit, total int) {
	pageCount := float64(total) / float64(limit)

	var nextPage *int
	if pageCount >= float64(page+1) {
		n := page + 1
		nextPage = &n
	}

	JSON(w, http.StatusOK, PaginatedEnvelope{
		Success:     true,
		PageCount:   pageCount,
		CurrentPage: page,
		NextPage:    nextPage,
		Data:        data,
	})
}

// JSONError converts an error into the uniform failure envelope. Anything
// that is not an AppError is reported as a 500 without leaking detail.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSON(w, appErr.StatusCode, errorEnvelope{
			Success: false,
			Error: errorBody{
				Message:    appErr.Message,
				StatusCode: appErr.StatusCode,
				Code:       appErr.Code,
			},
		})
		return
	}

	JSON(w, http.StatusInternalServerError, errorEnvelope{
		Success: false,
		Error: errorBody{
			Message:    "Server Error",
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternal,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, ValidationError(message))
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, NotFoundError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	JSONError(w, err)
}

// FormatValidationError aggregates every failing field into one message, so
// a request with several bad fields produces a single validation failure.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, formatFieldError(fe))
	}

	return strings.Join(parts, "; ")
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter valid email address"
	case "alpha":
		return fmt.Sprintf("%s can contain only alphabetical characters", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
