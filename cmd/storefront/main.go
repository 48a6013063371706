package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fruito/storefront/internal/api"
	"github.com/fruito/storefront/internal/core/ports"
	"github.com/fruito/storefront/internal/core/service"
	"github.com/fruito/storefront/internal/infrastructure/backend"
	"github.com/fruito/storefront/internal/infrastructure/config"
	dbredis "github.com/fruito/storefront/internal/infrastructure/db/redis"
	"github.com/fruito/storefront/internal/infrastructure/http/handlers"
	"github.com/fruito/storefront/internal/infrastructure/session"
	"github.com/fruito/storefront/pkg/logger"
)

func main() {
	loadDotenv()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.CookieSecret == "" && cfg.Env != "development" {
		log.Fatal().Msg("COOKIE_SECRET must be set outside development")
	}

	ctx := context.Background()

	// Session store: Redis when configured, in-process memory otherwise.
	var sessions interface {
		ports.SessionStore
		handlers.Pinger
	}
	switch cfg.Session.Backend {
	case "redis":
		client, err := dbredis.Connect(ctx, dbredis.Config{
			Addr: cfg.Session.Redis.Addr,
			DB:   cfg.Session.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		sessions = session.NewRedisStore(client, cfg.Session.TTL)
	default:
		log.Warn().Str("backend", cfg.Session.Backend).Msg("using in-memory sessions; identities will not survive a restart")
		sessions = session.NewMemoryStore()
	}

	gateway := backend.New(cfg.BackendURL, &http.Client{}, log)
	storefront := service.NewStorefrontService(gateway, sessions, log)

	e, err := api.NewRouter(cfg, storefront, sessions, gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("storefront frontend listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server exited cleanly")
}

// loadDotenv overlays the nearest .env file when present. Missing files are
// fine; the environment wins in deployments.
func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			return
		}
	}
}
