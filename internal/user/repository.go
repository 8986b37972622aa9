// stellar-backend | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/astralhq/stellar-backend/internal/core"
)

// Repository persists accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context, params ListUsersParams) ([]User, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, api_key, balance, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, u, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.APIKey, u.Balance, u.IsActive, u.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateKey
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *repository) GetByAPIKey(ctx context.Context, apiKey string) (*User, error) {
	return r.getBy(ctx, "api_key", apiKey)
}

func (r *repository) getBy(ctx context.Context, column, value string) (*User, error) {
	var u User
	query := fmt.Sprintf(`
		SELECT id, name, email, password_hash, api_key, balance, is_active, is_admin, created_at, updated_at
		FROM users
		WHERE %s = $1`, column)

	if err := r.db.GetContext(ctx, &u, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, balance = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &u.UpdatedAt, query,
		u.ID, u.Name, u.Email, u.Balance, u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		if isUniqueViolation(err) {
			return core.ErrDuplicateKey
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password rows: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, params ListUsersParams) ([]User, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := make([]User, 0, params.Limit)
	query := `
		SELECT id, name, email, password_hash, api_key, balance, is_active, is_admin, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &users, query, params.Limit, params.Offset()); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
