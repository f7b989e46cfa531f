package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	unset(t, "ENV", "DATABASE_DRIVER", "DB_AUTO_MIGRATE", "RATE_LIMIT_ENABLED",
		"LEDGER_ACCOUNT_BALANCE_SEED", "LEDGER_EXPENSE_DELETE_PERIOD", "AMQP_URL", "REDIS_URL")

	cfg := Load()

	if cfg.Server.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Database.AutoMigrate {
		t.Error("Database.AutoMigrate should default to false")
	}
	if !cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled should default to true outside test")
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit.Window = %v, want 1m", cfg.RateLimit.Window)
	}
	if cfg.Ledger.BalanceSeed != "initial" {
		t.Errorf("Ledger.BalanceSeed = %q, want initial", cfg.Ledger.BalanceSeed)
	}
	if cfg.Ledger.ExpenseDeletePeriod != "stored" {
		t.Errorf("Ledger.ExpenseDeletePeriod = %q, want stored", cfg.Ledger.ExpenseDeletePeriod)
	}
	if cfg.AMQP.URL != "" {
		t.Errorf("AMQP.URL = %q, want empty", cfg.AMQP.URL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LEDGER_ACCOUNT_BALANCE_SEED", "zero")
	t.Setenv("LEDGER_EXPENSE_DELETE_PERIOD", "date")

	cfg := Load()

	if cfg.Database.Driver != "sqlite" || !cfg.Database.AutoMigrate {
		t.Errorf("Database = %+v, want sqlite with auto-migrate", cfg.Database)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled should default to false when ENV=test")
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("RateLimit.Window = %v, want 30s", cfg.RateLimit.Window)
	}
	if cfg.Ledger.BalanceSeed != "zero" || cfg.Ledger.ExpenseDeletePeriod != "date" {
		t.Errorf("Ledger = %+v, want zero/date", cfg.Ledger)
	}
}

func TestGetEnvOneOfRejectsUnknownValues(t *testing.T) {
	t.Setenv("LEDGER_EXPENSE_DELETE_PERIOD", "yesterday")

	if got := Load().Ledger.ExpenseDeletePeriod; got != "stored" {
		t.Errorf("ExpenseDeletePeriod = %q, want fallback stored", got)
	}
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	if got := Load().Server.Port; got != 8080 {
		t.Errorf("Server.Port = %d, want 8080", got)
	}
}

// unset clears keys for the duration of the test.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
