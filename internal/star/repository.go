// stellar-backend | 2026
// repository.go

package star

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/astralhq/stellar-backend/internal/core"
)

// Repository persists stars and resolves their derived planet id lists.
type Repository interface {
	Create(ctx context.Context, s *Star) error
	GetByID(ctx context.Context, id string) (*Star, error)
	GetByName(ctx context.Context, name string) (*Star, error)
	List(ctx context.Context, params ListStarsParams) ([]Star, int, error)
	Update(ctx context.Context, s *Star) error
	Delete(ctx context.Context, id string) error
	PlanetIDs(ctx context.Context, starIDs []string) (map[string][]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Star) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO stars (id, name, temperature, mass, diameter, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, s, query,
		s.ID, s.Name, s.Temperature, s.Mass, s.Diameter, s.Image)
	if err != nil {
		return fmt.Errorf("create star: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Star, error) {
	return r.getBy(ctx, "id", id)
}

func (r *repository) GetByName(ctx context.Context, name string) (*Star, error) {
	return r.getBy(ctx, "name", name)
}

func (r *repository) getBy(ctx context.Context, column, value string) (*Star, error) {
	var s Star
	query := fmt.Sprintf(`
		SELECT id, name, temperature, mass, diameter, image, created_at, updated_at
		FROM stars
		WHERE %s = $1`, column)

	if err := r.db.GetContext(ctx, &s, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get star by %s: %w", column, err)
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context, params ListStarsParams) ([]Star, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM stars`); err != nil {
		return nil, 0, fmt.Errorf("count stars: %w", err)
	}

	stars := make([]Star, 0, params.Limit)
	query := `
		SELECT id, name, temperature, mass, diameter, image, created_at, updated_at
		FROM stars
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &stars, query, params.Limit, params.Offset()); err != nil {
		return nil, 0, fmt.Errorf("list stars: %w", err)
	}
	return stars, total, nil
}

func (r *repository) Update(ctx context.Context, s *Star) error {
	query := `
		UPDATE stars
		SET name = $2, temperature = $3, mass = $4, diameter = $5, image = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &s.UpdatedAt, query,
		s.ID, s.Name, s.Temperature, s.Mass, s.Diameter, s.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		return fmt.Errorf("update star: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete star: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete star rows: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

// PlanetIDs resolves the planet ids for a batch of stars in one query.
func (r *repository) PlanetIDs(ctx context.Context, starIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(starIDs))
	if len(starIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, star_id FROM planets WHERE star_id IN (?) ORDER BY sequence_number, created_at`,
		starIDs)
	if err != nil {
		return nil, fmt.Errorf("build planet ids query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query planet ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var planetID, starID string
		if err := rows.Scan(&planetID, &starID); err != nil {
			return nil, fmt.Errorf("scan planet id: %w", err)
		}
		out[starID] = append(out[starID], planetID)
	}
	return out, rows.Err()
}
