// Package main is the entry point for the ledger API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/e-budget/backend/config"
	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/infra/cache"
	"github.com/e-budget/backend/internal/infra/db"
	"github.com/e-budget/backend/internal/infra/dependency"
	"github.com/e-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/e-budget/backend/internal/integration/messaging"
	"github.com/e-budget/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	slog.Info("Starting ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate || cfg.Database.Driver == db.DriverSQLite {
		if err := database.AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		slog.Info("Database schema migrated")
	}

	memoryStore := middleware.NewMemoryStore(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	opts := dependency.Options{
		DBHealthChecker: database.HealthCheck,
		RateLimitStore:  memoryStore,
	}

	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, rate limiting per instance", "error", err)
		} else {
			defer client.Close()
			opts.RateLimitStore = middleware.NewRedisStore(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
			opts.CacheHealthChecker = cache.HealthChecker(client)
		}
	}

	var publisher adapter.EventPublisher = messaging.NewNoopPublisher()
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			slog.Warn("Event broker unavailable, ledger events will not be published", "error", err)
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()
	opts.Publisher = publisher

	injector := dependency.NewInjector(cfg, database.DB(), opts)
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if opts.RateLimitStore == memoryStore {
		g.Go(func() error {
			memoryStore.RunCleanup(gctx, cfg.RateLimit.Window)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
