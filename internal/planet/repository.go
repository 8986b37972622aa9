// stellar-backend | 2026
// repository.go

package planet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/astralhq/stellar-backend/internal/core"
)

// Repository persists planets.
type Repository interface {
	Create(ctx context.Context, p *Planet) error
	GetByID(ctx context.Context, id string) (*Planet, error)
	List(ctx context.Context, params ListPlanetsParams) ([]Planet, int, error)
	Update(ctx context.Context, p *Planet) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const planetColumns = `id, name, distance_to_star, diameter, year_duration, day_duration,
		temperature, sequence_number, satellites, image, star_id, created_at, updated_at`

// Create inserts the planet and bumps the owning star's updated_at in the
// same transaction, since attaching a planet changes the star's derived
// planet list.
func (r *repository) Create(ctx context.Context, p *Planet) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO planets (id, name, distance_to_star, diameter, year_duration, day_duration,
				temperature, sequence_number, satellites, image, star_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at, updated_at`

		err := tx.GetContext(ctx, p, query,
			p.ID, p.Name, p.DistanceToStar, p.Diameter, p.YearDuration, p.DayDuration,
			p.Temperature, p.SequenceNumber, p.Satellites, p.Image, p.StarID)
		if err != nil {
			return fmt.Errorf("create planet: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE stars SET updated_at = NOW() WHERE id = $1`, p.StarID); err != nil {
			return fmt.Errorf("touch star: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Planet, error) {
	var p Planet
	query := `SELECT ` + planetColumns + ` FROM planets WHERE id = $1`

	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get planet: %w", err)
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, params ListPlanetsParams) ([]Planet, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM planets`); err != nil {
		return nil, 0, fmt.Errorf("count planets: %w", err)
	}

	planets := make([]Planet, 0, params.Limit)
	query := `
		SELECT ` + planetColumns + `
		FROM planets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &planets, query, params.Limit, params.Offset()); err != nil {
		return nil, 0, fmt.Errorf("list planets: %w", err)
	}
	return planets, total, nil
}

func (r *repository) Update(ctx context.Context, p *Planet) error {
	query := `
		UPDATE planets
		SET name = $2, distance_to_star = $3, diameter = $4, year_duration = $5,
			day_duration = $6, temperature = $7, sequence_number = $8, satellites = $9,
			image = $10, star_id = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID, p.Name, p.DistanceToStar, p.Diameter, p.YearDuration, p.DayDuration,
		p.Temperature, p.SequenceNumber, p.Satellites, p.Image, p.StarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		return fmt.Errorf("update planet: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var starID string
		err := tx.GetContext(ctx, &starID,
			`DELETE FROM planets WHERE id = $1 RETURNING star_id`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return core.ErrNotFound
			}
			return fmt.Errorf("delete planet: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE stars SET updated_at = NOW() WHERE id = $1`, starID); err != nil {
			return fmt.Errorf("touch star: %w", err)
		}
		return nil
	})
}
