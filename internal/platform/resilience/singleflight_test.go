package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32
	start := make(chan struct{})

	const waiters = 8
	results := make([]any, waiters)
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			val, err, _ := flight.Do("players?comp=uslc", func() (any, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "payload", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = val
		}(i)
	}

	close(start)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected a single execution, got=%d", got)
	}
	for i, val := range results {
		if val != "payload" {
			t.Fatalf("waiter %d got %v", i, val)
		}
	}
}

func TestSingleFlight_SequentialCallsRunSeparately(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	calls := 0
	for i := 0; i < 3; i++ {
		_, _, shared := flight.Do("key", func() (any, error) {
			calls++
			return nil, nil
		})
		if shared {
			t.Fatalf("sequential call %d should not share a result", i)
		}
	}
	if calls != 3 {
		t.Fatalf("expected 3 executions, got=%d", calls)
	}
}
