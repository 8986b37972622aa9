// stellar-backend | 2026
// service.go

package star

import (
	"context"
	"errors"
	"fmt"

	"github.com/astralhq/stellar-backend/internal/core"
)

// Service implements the star catalog operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateStarRequest) (*StarResponse, error) {
	star := &Star{
		Name:        req.Name,
		Temperature: req.Temperature,
		Mass:        req.Mass,
		Diameter:    req.Diameter,
		Image:       req.Image,
	}
	if err := s.repo.Create(ctx, star); err != nil {
		return nil, err
	}

	resp := toStarResponse(star, nil)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*StarResponse, error) {
	star, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Star Not Found")
		}
		return nil, fmt.Errorf("get star: %w", err)
	}
	return s.withPlanets(ctx, star)
}

// FindIDByName resolves a star by its exact name; the planet endpoints attach
// planets to stars by name rather than id.
func (s *Service) FindIDByName(ctx context.Context, name string) (string, error) {
	star, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return star.ID, nil
}

func (s *Service) List(ctx context.Context, params ListStarsParams) ([]StarResponse, int, error) {
	stars, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(stars))
	for i := range stars {
		ids = append(ids, stars[i].ID)
	}
	planets, err := s.repo.PlanetIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]StarResponse, 0, len(stars))
	for i := range stars {
		out = append(out, toStarResponse(&stars[i], planets[stars[i].ID]))
	}
	return out, total, nil
}

// Update overwrites only the submitted fields; everything else keeps its
// stored value.
func (s *Service) Update(ctx context.Context, id string, req UpdateStarRequest) (*StarResponse, error) {
	star, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Star Not Found")
		}
		return nil, fmt.Errorf("get star: %w", err)
	}

	if req.Name != nil {
		star.Name = *req.Name
	}
	if req.Temperature != nil {
		star.Temperature = *req.Temperature
	}
	if req.Mass != nil {
		star.Mass = *req.Mass
	}
	if req.Diameter != nil {
		star.Diameter = *req.Diameter
	}
	if req.Image != nil {
		star.Image = *req.Image
	}

	if err := s.repo.Update(ctx, star); err != nil {
		return nil, fmt.Errorf("update star: %w", err)
	}
	return s.withPlanets(ctx, star)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("Star Not Found")
		}
		return fmt.Errorf("delete star: %w", err)
	}
	return nil
}

func (s *Service) withPlanets(ctx context.Context, star *Star) (*StarResponse, error) {
	planets, err := s.repo.PlanetIDs(ctx, []string{star.ID})
	if err != nil {
		return nil, err
	}
	resp := toStarResponse(star, planets[star.ID])
	return &resp, nil
}
