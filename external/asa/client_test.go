package asa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/resilience"
	"github.com/asastats/datamart/internal/platform/table"
	"github.com/asastats/datamart/internal/usecase"
)

func newTestClient(t *testing.T, baseURL string, maxRetries int, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func marshalRecords(t *testing.T, records []map[string]any) []byte {
	t.Helper()
	raw, err := sonic.Marshal(records)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	return raw
}

func TestClient_TeamsPaginatesUntilShortPage(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/uslc/teams" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		var records []map[string]any
		if offset == 0 {
			records = make([]map[string]any, 0, pageLimit)
			for i := 0; i < pageLimit; i++ {
				records = append(records, map[string]any{"team_id": fmt.Sprintf("t%d", i)})
			}
		} else {
			records = []map[string]any{{"team_id": "tail"}}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(marshalRecords(t, records))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 0, resilience.CircuitBreakerConfig{})

	teams, err := client.Teams(context.Background(), "uslc")
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if teams.Len() != pageLimit+1 {
		t.Fatalf("expected %d rows, got %d", pageLimit+1, teams.Len())
	}
	if got := requests.Load(); got != 2 {
		t.Fatalf("expected 2 page requests, got %d", got)
	}
	if last, _ := table.String(teams.Row(teams.Len()-1), "team_id"); last != "tail" {
		t.Fatalf("pages concatenated out of order: %v", teams.Row(teams.Len()-1))
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		_, _ = w.Write(marshalRecords(t, []map[string]any{{"player_id": "p1"}}))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 2, resilience.CircuitBreakerConfig{})

	players, err := client.Players(context.Background(), "uslc")
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if players.Len() != 1 {
		t.Fatalf("expected recovered page, got %d rows", players.Len())
	}
	if got := requests.Load(); got != 2 {
		t.Fatalf("expected one retry, got %d requests", got)
	}
}

func TestClient_ClientErrorDoesNotRetry(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "no such feed", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3, resilience.CircuitBreakerConfig{})

	if _, err := client.Referees(context.Background(), "uslc"); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := requests.Load(); got != 1 {
		t.Fatalf("4xx must not be retried, got %d requests", got)
	}
}

func TestClient_RejectsUnknownCompetition(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0", 0, resilience.CircuitBreakerConfig{})

	_, err := client.Games(context.Background(), "premier-league")
	if !errors.Is(err, ErrUnknownCompetition) {
		t.Fatalf("expected ErrUnknownCompetition, got %v", err)
	}
}

func TestClient_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		ProbeLimit:       1,
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.Stadia(ctx, "uslc"); err == nil {
			t.Fatal("expected failure while upstream is down")
		}
	}
	before := requests.Load()

	_, err := client.Stadia(ctx, "uslc")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency-unavailable once circuit is open, got %v", err)
	}
	if requests.Load() != before {
		t.Fatal("open circuit must short-circuit before reaching the server")
	}
}
