package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bloodchain/portal/internal/api"
	"github.com/bloodchain/portal/internal/api/handler"
	"github.com/bloodchain/portal/internal/api/middleware"
	"github.com/bloodchain/portal/internal/core/ports"
	"github.com/bloodchain/portal/internal/infrastructure/db/mongo"
	"github.com/bloodchain/portal/internal/infrastructure/db/redis"
	"github.com/bloodchain/portal/internal/infrastructure/fixtures"
	"github.com/bloodchain/portal/internal/infrastructure/memory"
	"github.com/bloodchain/portal/internal/pkg/config"
	"github.com/bloodchain/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal HTTP server",
	RunE:  runServe,
}

// backends holds the configured stores and their readiness checks.
type backends struct {
	sessions ports.SessionStore
	fixtures ports.FixtureSource
	checks   map[string]handler.Pinger
	closers  []func(context.Context) error
}

func (b *backends) close(ctx context.Context, log zerolog.Logger) {
	for _, c := range b.closers {
		if err := c(ctx); err != nil {
			log.Warn().Err(err).Msg("backend close failed")
		}
	}
}

func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{checks: map[string]handler.Pinger{}}

	switch cfg.Session.Backend {
	case config.BackendRedis:
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		b.sessions = redis.NewSessionStore(rdb, cfg.Session.TTL)
		b.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		b.closers = append(b.closers, func(context.Context) error { return rdb.Close() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	default:
		b.sessions = memory.NewSessionStore().WithTTL(cfg.Session.TTL)
	}

	switch cfg.Fixtures.Backend {
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.fixtures = mongo.NewFixtureRepository(db)
		b.checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		b.closers = append(b.closers, client.Disconnect)
		log.Info().Str("db", cfg.Mongo.Database).Msg("fixtures loaded from mongodb")
	default:
		b.fixtures = fixtures.NewEmbedded()
	}
	return b, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "bloodchain",
	})
	if cfg.Session.GeneratedSecret {
		log.Warn().Msg("SESSION_SECRET not set, using a random secret; sessions end on restart")
	}

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("backends: %w", err)
	}
	defer b.close(context.Background(), log)

	e, err := api.NewRouter(api.Options{
		Log:         log,
		Sessions:    b.sessions,
		Fixtures:    b.fixtures,
		DefaultRole: cfg.Role(),
		Cookie: middleware.CookieConfig{
			Name:   cfg.Session.Cookie,
			Secret: cfg.Session.Secret,
			TTL:    cfg.Session.TTL,
			Secure: cfg.CookieSecure,
		},
		CSRF:   cfg.CSRFEnabled,
		Checks: b.checks,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("portal listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
