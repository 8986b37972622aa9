// stellar-backend | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeBadCredential       = "BAD_CREDENTIAL"
	CodeDuplicateAccount    = "DUPLICATE_ACCOUNT"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeNotFound            = "NOT_FOUND"
	CodeInternal            = "INTERNAL"
)

// AppError is the single error shape crossing the HTTP boundary: a
// human-readable message plus the status the response must carry.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: status,
		Code:       code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func ValidationError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		CodeValidation,
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Not authorized to access this route"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		CodeUnauthenticated,
	)
}

// InvalidCredentialsError covers a failed login. The message never says
// whether the email or the password was wrong.
func InvalidCredentialsError() *AppError {
	return NewAppError(
		ErrUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
		CodeInvalidCredentials,
	)
}

// WrongPasswordError covers a password change where the old password does
// not match. Unlike a failed login this is a plain 400: the caller is
// already authenticated.
func WrongPasswordError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		CodeInvalidCredentials,
	)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		CodeForbidden,
	)
}

func BadCredentialError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		CodeBadCredential,
	)
}

func DuplicateAccountError(message string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		message,
		http.StatusBadRequest,
		CodeDuplicateAccount,
	)
}

// InsufficientBalanceError reports the activation shortfall in the same
// wording the public API has always used.
func InsufficientBalanceError(cost, balance int64) *AppError {
	return NewAppError(
		ErrInsufficientBalance,
		fmt.Sprintf(
			"Your balance is less than %d. You need %d",
			cost,
			cost-balance,
		),
		http.StatusBadRequest,
		CodeInsufficientBalance,
	)
}

func NotFoundError(message string) *AppError {
	return NewAppError(
		ErrNotFound,
		message,
		http.StatusNotFound,
		CodeNotFound,
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"Not authorized to access this route",
		http.StatusUnauthorized,
		CodeUnauthenticated,
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"Not authorized to access this route",
		http.StatusUnauthorized,
		CodeUnauthenticated,
	)
}
