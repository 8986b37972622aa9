// stellar-backend | 2026
// server.go

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/health"
)

// Config assembles the HTTP server. The middleware chain must be supplied
// here: chi requires every middleware to be registered before the first
// route, and New mounts the health and static routes itself.
type Config struct {
	Server     config.ServerConfig
	Uploads    config.UploadsConfig
	Logger     *slog.Logger
	Health     *health.Handler
	Middleware []func(http.Handler) http.Handler
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	logger     *slog.Logger
	health     *health.Handler
}

func New(cfg Config) *Server {
	router := chi.NewRouter()
	router.Use(cfg.Middleware...)

	cfg.Health.Register(router)

	// Uploaded catalog images are served straight off disk.
	publicPath := "/" + strings.Trim(cfg.Uploads.PublicPath, "/")
	router.Handle(publicPath+"/*", http.StripPrefix(publicPath+"/",
		http.FileServer(http.Dir(cfg.Uploads.Dir))))

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Address(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		router: router,
		logger: cfg.Logger,
		health: cfg.Health,
	}
}

// Router exposes the mux so the caller can mount the API routes.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown flips readiness, waits drainDelay for load balancers to notice,
// then closes the listener gracefully.
func (s *Server) Shutdown(ctx context.Context, drainDelay time.Duration) error {
	s.health.SetDraining()
	s.logger.Info("draining before shutdown", "delay", drainDelay)

	select {
	case <-time.After(drainDelay):
	case <-ctx.Done():
	}

	return s.httpServer.Shutdown(ctx)
}
