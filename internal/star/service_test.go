// stellar-backend | 2026
// service_test.go

package star

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/stellar-backend/internal/core"
)

type fakeStarRepo struct {
	stars   map[string]*Star
	planets map[string][]string
}

func newFakeStarRepo() *fakeStarRepo {
	return &fakeStarRepo{
		stars:   make(map[string]*Star),
		planets: make(map[string][]string),
	}
}

func (f *fakeStarRepo) Create(_ context.Context, s *Star) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	cp := *s
	f.stars[s.ID] = &cp
	return nil
}

func (f *fakeStarRepo) GetByID(_ context.Context, id string) (*Star, error) {
	s, ok := f.stars[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStarRepo) GetByName(_ context.Context, name string) (*Star, error) {
	for _, s := range f.stars {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeStarRepo) List(_ context.Context, _ ListStarsParams) ([]Star, int, error) {
	out := make([]Star, 0, len(f.stars))
	for _, s := range f.stars {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (f *fakeStarRepo) Update(_ context.Context, s *Star) error {
	if _, ok := f.stars[s.ID]; !ok {
		return core.ErrNotFound
	}
	cp := *s
	f.stars[s.ID] = &cp
	return nil
}

func (f *fakeStarRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.stars[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.stars, id)
	return nil
}

func (f *fakeStarRepo) PlanetIDs(_ context.Context, starIDs []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, id := range starIDs {
		if ids, ok := f.planets[id]; ok {
			out[id] = ids
		}
	}
	return out, nil
}

func seedStar(t *testing.T, svc *Service) *StarResponse {
	t.Helper()
	s, err := svc.Create(context.Background(), CreateStarRequest{
		Name:        "Sirius",
		Temperature: "9940",
		Mass:        "2.063",
		Diameter:    "1.711",
	})
	require.NoError(t, err)
	return s
}

func TestService_Get(t *testing.T) {
	repo := newFakeStarRepo()
	svc := NewService(repo)
	seeded := seedStar(t, svc)
	repo.planets[seeded.ID] = []string{"p1", "p2"}

	t.Run("includes derived planet ids", func(t *testing.T) {
		s, err := svc.Get(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, s.Planets)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "nope")

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Star Not Found", appErr.Message)
		assert.Equal(t, 404, appErr.StatusCode)
	})
}

func TestService_Create_EmptyPlanetList(t *testing.T) {
	svc := NewService(newFakeStarRepo())

	s := seedStar(t, svc)
	assert.NotNil(t, s.Planets)
	assert.Empty(t, s.Planets)
}

func TestService_Update(t *testing.T) {
	repo := newFakeStarRepo()
	svc := NewService(repo)
	seeded := seedStar(t, svc)
	ctx := context.Background()

	t.Run("submitted fields overwrite, omitted keep", func(t *testing.T) {
		temp := "9800"
		updated, err := svc.Update(ctx, seeded.ID, UpdateStarRequest{Temperature: &temp})
		require.NoError(t, err)

		assert.Equal(t, "9800", updated.Temperature)
		assert.Equal(t, "Sirius", updated.Name)
		assert.Equal(t, "2.063", updated.Mass)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "Vega"
		_, err := svc.Update(ctx, "nope", UpdateStarRequest{Name: &name})

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.StatusCode)
	})
}

func TestService_Delete(t *testing.T) {
	repo := newFakeStarRepo()
	svc := NewService(repo)
	seeded := seedStar(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, seeded.ID))

	err := svc.Delete(ctx, seeded.ID)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Star Not Found", appErr.Message)
}
