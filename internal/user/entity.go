// stellar-backend | 2026
// entity.go

package user

import (
	"time"
)

// User is the account record. The API key is generated once at registration
// and never rotated; is_active flips true only through paid activation.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	APIKey       string    `db:"api_key"`
	Balance      int64     `db:"balance"`
	IsActive     bool      `db:"is_active"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
