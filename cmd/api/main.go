// stellar-backend | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis_rate/v10"

	"github.com/astralhq/stellar-backend/internal/admin"
	"github.com/astralhq/stellar-backend/internal/auth"
	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/health"
	"github.com/astralhq/stellar-backend/internal/middleware"
	"github.com/astralhq/stellar-backend/internal/planet"
	"github.com/astralhq/stellar-backend/internal/server"
	"github.com/astralhq/stellar-backend/internal/star"
	"github.com/astralhq/stellar-backend/internal/upload"
	"github.com/astralhq/stellar-backend/internal/user"
)

const drainDelay = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Error("init telemetry", "error", err)
		os.Exit(1)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("init database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Error("init redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		logger.Error("init token manager", "error", err)
		os.Exit(1)
	}

	uploads, err := upload.NewSaver(cfg.Uploads)
	if err != nil {
		logger.Error("init uploads", "error", err)
		os.Exit(1)
	}

	userSvc := user.NewService(user.NewRepository(db.DB))
	authSvc := auth.NewService(userSvc, tokens, cfg.Billing)
	starSvc := star.NewService(star.NewRepository(db.DB))
	planetSvc := planet.NewService(planet.NewRepository(db.DB), starSvc)

	defaultLimit := cfg.Pagination.DefaultLimit
	authHandler := auth.NewHandler(authSvc)
	starHandler := star.NewHandler(starSvc, uploads, defaultLimit)
	planetHandler := planet.NewHandler(planetSvc, uploads, defaultLimit)
	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Users:        userSvc,
		DBStats:      db.Stats,
		RedisStats:   rdb.PoolStats,
		DefaultLimit: defaultLimit,
	})

	healthHandler := health.NewHandler(
		health.NewChecker("database", db.Ping),
		health.NewChecker("redis", rdb.Ping),
	)

	limiter := middleware.NewRateLimiter(rdb.Client, middleware.RateLimitConfig{
		Limit: redis_rate.Limit{
			Rate:   cfg.RateLimit.Requests,
			Period: cfg.RateLimit.Window,
			Burst:  cfg.RateLimit.Burst,
		},
		FailOpen: true,
	})

	srv := server.New(server.Config{
		Server:  cfg.Server,
		Uploads: cfg.Uploads,
		Logger:  logger,
		Health:  healthHandler,
		Middleware: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.SecurityHeaders(cfg.IsProduction()),
			middleware.CORS(cfg.CORS),
			limiter.Handler,
		},
	})

	authenticate := middleware.Authenticator(tokens, userSvc)
	requireAdmin := func(next http.Handler) http.Handler {
		return authenticate(middleware.RequireAdmin(next))
	}
	requireAPIKey := middleware.RequireAPIKey(userSvc)

	srv.Router().Route("/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authenticate))
		r.Mount("/stars", starHandler.Routes(requireAdmin, requireAPIKey))
		r.Mount("/planets", planetHandler.Routes(requireAdmin, requireAPIKey))

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Mount("/admin", adminHandler.Routes())
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
