package config

import (
	"testing"
	"time"

	"github.com/asastats/datamart/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "asa-datamart" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.Competition != "uslc" {
		t.Fatalf("unexpected default competition %q", cfg.Competition)
	}
	if cfg.ASABaseURL != "https://app.americansocceranalysis.com/api/v1" {
		t.Fatalf("unexpected base url %q", cfg.ASABaseURL)
	}
	if cfg.ASATimeout != 20*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.ASATimeout)
	}
	if !cfg.ASACircuitEnabled {
		t.Fatal("circuit breaker should default to enabled")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("COMPETITION", "MLS")
	t.Setenv("ASA_MAX_RETRIES", "3")
	t.Setenv("ASA_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("expected prod env, got %q", cfg.AppEnv)
	}
	if cfg.Competition != "mls" {
		t.Fatalf("competition must be lowercased, got %q", cfg.Competition)
	}
	if cfg.ASAMaxRetries != 3 {
		t.Fatalf("unexpected max retries %d", cfg.ASAMaxRetries)
	}
	if cfg.ASATimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.ASATimeout)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid app env", key: "APP_ENV", value: "qa"},
		{name: "invalid log level", key: "APP_LOG_LEVEL", value: "loud"},
		{name: "negative timeout", key: "ASA_TIMEOUT", value: "-5s"},
		{name: "non-numeric retries", key: "ASA_MAX_RETRIES", value: "many"},
		{name: "zero failure count", key: "ASA_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "uptrace without dsn", key: "UPTRACE_ENABLED", value: "true"},
		{name: "pyroscope without address", key: "PYROSCOPE_ENABLED", value: "true"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
