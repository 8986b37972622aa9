// stellar-backend | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/stellar-backend/internal/core"
)

// Checker is a dependency that can report whether it is reachable.
type Checker interface {
	Name() string
	Ping(ctx context.Context) error
}

const checkTimeout = 2 * time.Second

type pingChecker struct {
	name string
	ping func(context.Context) error
}

func (c pingChecker) Name() string                   { return c.name }
func (c pingChecker) Ping(ctx context.Context) error { return c.ping(ctx) }

// NewChecker wraps a ping function as a named dependency check.
func NewChecker(name string, ping func(context.Context) error) Checker {
	return pingChecker{name: name, ping: ping}
}

// Handler serves the liveness and readiness probes. Liveness answers as long
// as the process runs; readiness additionally pings every registered
// dependency and flips unhealthy during shutdown drain.
type Handler struct {
	checkers []Checker
	draining atomic.Bool
}

func NewHandler(checkers ...Checker) *Handler {
	return &Handler{checkers: checkers}
}

// Register mounts the probe endpoints. /healthz is an alias for the full
// readiness check.
func (h *Handler) Register(r chi.Router) {
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
	r.Get("/healthz", h.Readiness)
}

// SetDraining marks the process as shutting down so load balancers stop
// routing to it before in-flight requests finish.
func (h *Handler) SetDraining() {
	h.draining.Store(true)
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, map[string]string{"status": "alive"})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		core.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "draining"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	type result struct {
		name string
		err  error
	}

	results := make([]result, len(h.checkers))
	var wg sync.WaitGroup
	for i, c := range h.checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			results[i] = result{name: c.Name(), err: c.Ping(ctx)}
		}(i, c)
	}
	wg.Wait()

	status := http.StatusOK
	checks := make(map[string]string, len(results))
	for _, res := range results {
		if res.err != nil {
			status = http.StatusServiceUnavailable
			checks[res.name] = "unreachable"
			continue
		}
		checks[res.name] = "ok"
	}

	core.JSON(w, status, checks)
}
