// stellar-backend | 2026
// dto.go

package auth

import (
	"time"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alpha"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,len=6"`
}

// UpdateProfileRequest carries only the fields the caller wants to change;
// omitted fields keep their stored values.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,alpha"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,len=6"`
}

// PaymentRequest tops up (or, with a negative amount, debits) the balance.
type PaymentRequest struct {
	Payment *int64 `json:"payment" validate:"required"`
}

// UserResponse is the account view returned by the auth endpoints. The
// password hash is never serialized.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"apiKey"`
	Balance   int64     `json:"balance"`
	IsActive  bool      `json:"isActive"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenResponse struct {
	Success bool         `json:"success"`
	Data    UserResponse `json:"data"`
	Token   string       `json:"token"`
}

type ActivateResponse struct {
	Success bool   `json:"success"`
	APIKey  string `json:"apiKey"`
	Message string `json:"message"`
}

func toUserResponse(p *Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		APIKey:    p.APIKey,
		Balance:   p.Balance,
		IsActive:  p.Active,
		IsAdmin:   p.Admin,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
