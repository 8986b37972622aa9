// stellar-backend | 2026
// handler.go

package admin

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/user"
)

// HandlerConfig wires the admin surface: the account listing plus runtime
// pool statistics for operators.
type HandlerConfig struct {
	Users        *user.Service
	DBStats      func() sql.DBStats
	RedisStats   func() *redis.PoolStats
	DefaultLimit int
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/users", h.ListUsers)
	r.Get("/stats", h.Stats)
	return r
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var params user.ListUsersParams
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		params.Limit = v
	}
	params.Normalize(h.cfg.DefaultLimit)

	users, total, err := h.cfg.Users.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.Paginated(w, users, params.Page, params.Limit, total)
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	db := h.cfg.DBStats()
	rd := h.cfg.RedisStats()

	core.OK(w, map[string]any{
		"database": map[string]any{
			"openConnections": db.OpenConnections,
			"inUse":           db.InUse,
			"idle":            db.Idle,
			"waitCount":       db.WaitCount,
			"waitDuration":    db.WaitDuration.String(),
		},
		"redis": map[string]any{
			"totalConns": rd.TotalConns,
			"idleConns":  rd.IdleConns,
			"hits":       rd.Hits,
			"misses":     rd.Misses,
			"timeouts":   rd.Timeouts,
		},
	})
}
