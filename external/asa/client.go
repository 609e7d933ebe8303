// Package asa is a client for the American Soccer Analysis public API. It
// returns every feed as a tabular relation and shields the pipeline behind
// retries, a circuit breaker and request deduplication.
package asa

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/resilience"
	"github.com/asastats/datamart/internal/platform/table"
	"github.com/asastats/datamart/internal/usecase"
)

const (
	defaultBaseURL = "https://app.americansocceranalysis.com/api/v1"
	defaultTimeout = 20 * time.Second

	// pageLimit is the API's maximum page size; shorter pages end the scan.
	pageLimit = 1000
)

var errTransient = crerr.New("asa transient failure")

// ErrUnknownCompetition marks a competition id the API does not serve.
var ErrUnknownCompetition = stderrors.New("unknown competition")

// Competitions lists the leagues covered by the analytics API.
var Competitions = map[string]struct{}{
	"mls":   {},
	"nwsl":  {},
	"uslc":  {},
	"usl1":  {},
	"nasl":  {},
	"mlsnp": {},
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.ProbeLimit),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Players(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "players")
}

func (c *Client) Teams(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "teams")
}

func (c *Client) Stadia(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "stadia")
}

func (c *Client) Managers(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "managers")
}

func (c *Client) Referees(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "referees")
}

func (c *Client) TeamGoalsAdded(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "teams/goals-added")
}

func (c *Client) TeamXGoals(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "teams/xgoals")
}

func (c *Client) TeamXPass(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "teams/xpass")
}

func (c *Client) PlayerGoalsAdded(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "players/goals-added")
}

func (c *Client) PlayerXGoals(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "players/xgoals")
}

func (c *Client) PlayerXPass(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "players/xpass")
}

func (c *Client) GoalkeeperXGoals(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "goalkeepers/xgoals")
}

func (c *Client) GoalkeeperGoalsAdded(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "goalkeepers/goals-added")
}

func (c *Client) Games(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "games")
}

func (c *Client) GameXGoals(ctx context.Context, competition string) (table.Table, error) {
	return c.fetchTable(ctx, competition, "games/xgoals")
}

// fetchTable walks the paginated feed and concatenates pages into one
// relation.
func (c *Client) fetchTable(ctx context.Context, competition, endpoint string) (table.Table, error) {
	competition = strings.ToLower(strings.TrimSpace(competition))
	if _, ok := Competitions[competition]; !ok {
		return table.Table{}, fmt.Errorf("%w: %q", ErrUnknownCompetition, competition)
	}

	records := make([]map[string]any, 0, pageLimit)
	for offset := 0; ; offset += pageLimit {
		page, err := c.fetchPage(ctx, "/"+competition+"/"+endpoint, offset)
		if err != nil {
			return table.Table{}, fmt.Errorf("fetch %s/%s offset=%d: %w", competition, endpoint, offset, err)
		}
		records = append(records, page...)
		if len(page) < pageLimit {
			break
		}
	}
	return table.FromRecords(records), nil
}

func (c *Client) fetchPage(ctx context.Context, path string, offset int) ([]map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "asa circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: analytics API is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("limit", strconv.Itoa(pageLimit))
	values.Set("offset", strconv.Itoa(offset))
	fullURL := c.baseURL + path + "?" + values.Encode()

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var records []map[string]any
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode analytics payload: %w", err)
	}
	return records, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: api status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("api status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("api request failed")
	}
	c.logger.WarnContext(ctx, "asa request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 512
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
