// Package app assembles the configured pipeline from its parts.
package app

import (
	"net/http"

	"github.com/asastats/datamart/external/asa"
	"github.com/asastats/datamart/internal/config"
	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/resilience"
	"github.com/asastats/datamart/internal/usecase"
)

// NewDatasetService wires the analytics API client into the dataset builder.
func NewDatasetService(cfg config.Config, logger *logging.Logger) *usecase.DatasetService {
	client := asa.NewClient(asa.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.ASATimeout},
		BaseURL:    cfg.ASABaseURL,
		Timeout:    cfg.ASATimeout,
		MaxRetries: cfg.ASAMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ASACircuitEnabled,
			FailureThreshold: cfg.ASACircuitFailureCount,
			OpenTimeout:      cfg.ASACircuitOpenTimeout,
			ProbeLimit:       cfg.ASACircuitHalfOpenMaxReq,
		},
	})

	return usecase.NewDatasetService(client, logger)
}
