// stellar-backend | 2026
// service_test.go

package planet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/stellar-backend/internal/core"
)

type fakePlanetRepo struct {
	planets map[string]*Planet
}

func newFakePlanetRepo() *fakePlanetRepo {
	return &fakePlanetRepo{planets: make(map[string]*Planet)}
}

func (f *fakePlanetRepo) Create(_ context.Context, p *Planet) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	f.planets[p.ID] = &cp
	return nil
}

func (f *fakePlanetRepo) GetByID(_ context.Context, id string) (*Planet, error) {
	p, ok := f.planets[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanetRepo) List(_ context.Context, _ ListPlanetsParams) ([]Planet, int, error) {
	out := make([]Planet, 0, len(f.planets))
	for _, p := range f.planets {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (f *fakePlanetRepo) Update(_ context.Context, p *Planet) error {
	if _, ok := f.planets[p.ID]; !ok {
		return core.ErrNotFound
	}
	cp := *p
	f.planets[p.ID] = &cp
	return nil
}

func (f *fakePlanetRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.planets[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.planets, id)
	return nil
}

type fakeStarFinder struct {
	byName map[string]string
}

func (f fakeStarFinder) FindIDByName(_ context.Context, name string) (string, error) {
	if id, ok := f.byName[name]; ok {
		return id, nil
	}
	return "", core.ErrNotFound
}

func newTestService() (*Service, *fakePlanetRepo) {
	repo := newFakePlanetRepo()
	stars := fakeStarFinder{byName: map[string]string{
		"Sirius": "star-1",
		"Vega":   "star-2",
	}}
	return NewService(repo, stars), repo
}

func earthRequest() CreatePlanetRequest {
	return CreatePlanetRequest{
		Name:           "Osiris",
		DistanceToStar: "0.045",
		Diameter:       "1.38",
		YearDuration:   "3.5",
		DayDuration:    "84",
		Temperature:    "1300",
		SequenceNumber: 1,
		Satellites:     0,
		Star:           "Sirius",
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("resolves star by name", func(t *testing.T) {
		p, err := svc.Create(ctx, earthRequest())
		require.NoError(t, err)
		assert.Equal(t, "star-1", p.Star)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("unknown star name", func(t *testing.T) {
		req := earthRequest()
		req.Star = "Nemesis"

		_, err := svc.Create(ctx, req)

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Star not found", appErr.Message)
		assert.Equal(t, 404, appErr.StatusCode)
	})
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, earthRequest())
	require.NoError(t, err)

	t.Run("submitted fields overwrite, omitted keep", func(t *testing.T) {
		temp := "1250"
		updated, err := svc.Update(ctx, created.ID, UpdatePlanetRequest{Temperature: &temp})
		require.NoError(t, err)

		assert.Equal(t, "1250", updated.Temperature)
		assert.Equal(t, "Osiris", updated.Name)
		assert.Equal(t, "star-1", updated.Star)
	})

	t.Run("star name moves planet to that star", func(t *testing.T) {
		star := "Vega"
		updated, err := svc.Update(ctx, created.ID, UpdatePlanetRequest{Star: &star})
		require.NoError(t, err)
		assert.Equal(t, "star-2", updated.Star)
	})

	t.Run("unknown star name fails without saving", func(t *testing.T) {
		star := "Nemesis"
		name := "Anubis"
		_, err := svc.Update(ctx, created.ID, UpdatePlanetRequest{Star: &star, Name: &name})

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Star not found", appErr.Message)

		current, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Osiris", current.Name)
	})

	t.Run("unknown planet id", func(t *testing.T) {
		name := "Anubis"
		_, err := svc.Update(ctx, "nope", UpdatePlanetRequest{Name: &name})

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Planet Not Found", appErr.Message)
	})
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, earthRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Planet Not Found", appErr.Message)
	assert.Equal(t, 404, appErr.StatusCode)
}
