package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker should allow: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("one failure below threshold should stay closed, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("threshold failures should open, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open breaker should reject, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("cooldown elapsed, probe should pass: %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open during probe, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("successful probe should close, got %s", state)
	}
}

func TestCircuitBreaker_ProbeFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, time.Second, 1)

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe should be admitted: %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("failed probe should reopen immediately, got %v", err)
	}
}

func TestCircuitBreaker_LimitsConcurrentProbes(t *testing.T) {
	b := NewCircuitBreaker(1, time.Second, 1)

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should be admitted: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("second concurrent probe should be rejected, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: false})
	defaults := DefaultCircuitBreakerConfig()

	if got.Enabled {
		t.Fatalf("normalize must not flip Enabled")
	}
	if got.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("unexpected threshold: %d", got.FailureThreshold)
	}
	if got.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("unexpected open timeout: %s", got.OpenTimeout)
	}
	if got.ProbeLimit != defaults.ProbeLimit {
		t.Fatalf("unexpected probe limit: %d", got.ProbeLimit)
	}
}
