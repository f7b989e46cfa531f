// Package main applies the versioned SQL migrations to a PostgreSQL database.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/e-budget/backend/config"
	"github.com/e-budget/backend/internal/infra/db"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.Database.Driver != db.DriverPostgres {
		slog.Error("Versioned migrations only support postgres", "driver", cfg.Database.Driver)
		os.Exit(1)
	}

	before, after, err := db.RunMigrations(cfg.Database.URL)
	if err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations applied", "from_version", before, "to_version", after)
}
