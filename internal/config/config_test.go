package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if !cfg.SeedDemoData {
		t.Fatalf("expected demo seed in dev by default")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.StatsWorkers != 4 {
		t.Fatalf("unexpected StatsWorkers: %d", cfg.StatsWorkers)
	}
	if !cfg.DBCircuit.Enabled || cfg.DBCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected DBCircuit: %+v", cfg.DBCircuit)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected PyroscopeAppName to default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_ProdDisablesDemoSeed(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("STORAGE_SEED_DEMO", "")
	t.Setenv("APP_SWAGGER_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SeedDemoData {
		t.Fatalf("expected SeedDemoData=false in prod by default")
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected SwaggerEnabled=false in prod by default")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("APP_ENV_FILE", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported STORAGE_DRIVER")
	}

	t.Setenv("STORAGE_DRIVER", "Postgres")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev/1\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"CACHE_TTL":         "0s",
		"APP_READ_TIMEOUT":  "soon",
		"STATS_WORKERS":     "0",
		"DB_MAX_OPEN_CONNS": "many",
		"CACHE_ENABLED":     "maybe",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("APP_ENV_FILE", "")
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_DotEnvFillsUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("STATS_WORKERS=9\nAPP_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", path)
	// registered for cleanup so the values loaded from the file do not leak
	t.Setenv("STATS_WORKERS", "")
	t.Setenv("APP_LOG_LEVEL", "")
	os.Unsetenv("STATS_WORKERS")
	os.Unsetenv("APP_LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StatsWorkers != 9 {
		t.Fatalf("unexpected StatsWorkers: %d", cfg.StatsWorkers)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"WARNING": logging.LevelWarn,
		"error":   logging.LevelError,
		"":        logging.LevelInfo,
		"verbose": logging.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q)=%s want=%s", in, got, want)
		}
	}
}
