// stellar-backend | 2026
// service.go

package planet

import (
	"context"
	"errors"
	"fmt"

	"github.com/astralhq/stellar-backend/internal/core"
)

// StarFinder resolves a star by its exact name. The planet endpoints accept
// star names, never star ids.
type StarFinder interface {
	FindIDByName(ctx context.Context, name string) (string, error)
}

// Service implements the planet catalog operations.
type Service struct {
	repo  Repository
	stars StarFinder
}

func NewService(repo Repository, stars StarFinder) *Service {
	return &Service{repo: repo, stars: stars}
}

func (s *Service) Create(ctx context.Context, req CreatePlanetRequest) (*PlanetResponse, error) {
	starID, err := s.resolveStar(ctx, req.Star)
	if err != nil {
		return nil, err
	}

	planet := &Planet{
		Name:           req.Name,
		DistanceToStar: req.DistanceToStar,
		Diameter:       req.Diameter,
		YearDuration:   req.YearDuration,
		DayDuration:    req.DayDuration,
		Temperature:    req.Temperature,
		SequenceNumber: req.SequenceNumber,
		Satellites:     req.Satellites,
		Image:          req.Image,
		StarID:         starID,
	}
	if err := s.repo.Create(ctx, planet); err != nil {
		return nil, err
	}

	resp := toPlanetResponse(planet)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*PlanetResponse, error) {
	planet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Planet Not Found")
		}
		return nil, fmt.Errorf("get planet: %w", err)
	}
	resp := toPlanetResponse(planet)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, params ListPlanetsParams) ([]PlanetResponse, int, error) {
	planets, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	out := make([]PlanetResponse, 0, len(planets))
	for i := range planets {
		out = append(out, toPlanetResponse(&planets[i]))
	}
	return out, total, nil
}

// Update overwrites only the submitted fields. Submitting a star name moves
// the planet to that star.
func (s *Service) Update(ctx context.Context, id string, req UpdatePlanetRequest) (*PlanetResponse, error) {
	planet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Planet Not Found")
		}
		return nil, fmt.Errorf("get planet: %w", err)
	}

	if req.Star != nil {
		starID, err := s.resolveStar(ctx, *req.Star)
		if err != nil {
			return nil, err
		}
		planet.StarID = starID
	}
	if req.Name != nil {
		planet.Name = *req.Name
	}
	if req.DistanceToStar != nil {
		planet.DistanceToStar = *req.DistanceToStar
	}
	if req.Diameter != nil {
		planet.Diameter = *req.Diameter
	}
	if req.YearDuration != nil {
		planet.YearDuration = *req.YearDuration
	}
	if req.DayDuration != nil {
		planet.DayDuration = *req.DayDuration
	}
	if req.Temperature != nil {
		planet.Temperature = *req.Temperature
	}
	if req.SequenceNumber != nil {
		planet.SequenceNumber = *req.SequenceNumber
	}
	if req.Satellites != nil {
		planet.Satellites = *req.Satellites
	}
	if req.Image != nil {
		planet.Image = *req.Image
	}

	if err := s.repo.Update(ctx, planet); err != nil {
		return nil, fmt.Errorf("update planet: %w", err)
	}

	resp := toPlanetResponse(planet)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("Planet Not Found")
		}
		return fmt.Errorf("delete planet: %w", err)
	}
	return nil
}

func (s *Service) resolveStar(ctx context.Context, name string) (string, error) {
	starID, err := s.stars.FindIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", core.NotFoundError("Star not found")
		}
		return "", fmt.Errorf("find star: %w", err)
	}
	return starID, nil
}
