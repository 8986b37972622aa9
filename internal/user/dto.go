// stellar-backend | 2026
// dto.go

package user

import (
	"time"
)

// UserResponse is the public view of an account. The password hash never
// leaves this package.
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

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		APIKey:    u.APIKey,
		Balance:   u.Balance,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

// ListUsersParams paginates the admin account listing.
type ListUsersParams struct {
	Page  int
	Limit int
}

func (p *ListUsersParams) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

func (p ListUsersParams) Offset() int {
	return p.Page*p.Limit - p.Limit
}
