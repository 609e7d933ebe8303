// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/asastats/datamart/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the datamart build.
type Config struct {
	AppEnv         string `validate:"required,oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string `validate:"required"`
	LogLevel       logging.Level

	Competition string `validate:"required,lowercase"`

	ASABaseURL               string        `validate:"required,url"`
	ASATimeout               time.Duration `validate:"gt=0"`
	ASAMaxRetries            int           `validate:"gte=0"`
	ASACircuitEnabled        bool
	ASACircuitFailureCount   int           `validate:"gte=1"`
	ASACircuitOpenTimeout    time.Duration `validate:"gt=0"`
	ASACircuitHalfOpenMaxReq int           `validate:"gte=1"`

	UptraceEnabled bool
	UptraceDSN     string `validate:"required_if=UptraceEnabled true"`

	PyroscopeEnabled       bool
	PyroscopeServerAddress string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration `validate:"gt=0"`
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	competition := strings.ToLower(strings.TrimSpace(getEnv("COMPETITION", "uslc")))

	asaTimeout, err := time.ParseDuration(getEnv("ASA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_TIMEOUT: %w", err)
	}
	asaMaxRetries, err := getEnvAsInt("ASA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_MAX_RETRIES: %w", err)
	}
	asaCircuitEnabled, err := strconv.ParseBool(getEnv("ASA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_CIRCUIT_ENABLED: %w", err)
	}
	asaCircuitFailureCount, err := getEnvAsInt("ASA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	asaCircuitOpenTimeout, err := time.ParseDuration(getEnv("ASA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	asaCircuitHalfOpenMaxReq, err := getEnvAsInt("ASA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ASA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    strings.TrimSpace(getEnv("SERVICE_NAME", "asa-datamart")),
		ServiceVersion: strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		LogLevel:       logLevel,

		Competition: competition,

		ASABaseURL:               strings.TrimSpace(getEnv("ASA_BASE_URL", "https://app.americansocceranalysis.com/api/v1")),
		ASATimeout:               asaTimeout,
		ASAMaxRetries:            asaMaxRetries,
		ASACircuitEnabled:        asaCircuitEnabled,
		ASACircuitFailureCount:   asaCircuitFailureCount,
		ASACircuitOpenTimeout:    asaCircuitOpenTimeout,
		ASACircuitHalfOpenMaxReq: asaCircuitHalfOpenMaxReq,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
