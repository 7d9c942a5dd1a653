package device

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestExecutor(policy RetryPolicy, breaker *CircuitBreaker, clock Clock, alert AlertFunc, cooldown time.Duration) (*Executor, *[]time.Duration) {
	exec := NewExecutor(policy, NewBackoff(time.Second, 2, 10*time.Second), breaker, clock, alert, cooldown)

	slept := &[]time.Duration{}
	exec.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return exec, slept
}

func TestExecutor_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(5, 30*time.Second, clock)
	exec, slept := newTestExecutor(RetryPolicy{MaxAttempts: 3}, cb, clock, nil, 0)

	calls := 0
	err := exec.Execute(context.Background(), "fetchPunches", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if len(*slept) != 2 {
		t.Fatalf("expected 2 backoff sleeps, got %d", len(*slept))
	}

	// 成功でブレーカーがリセットされること。
	state, count, _ := cb.State()
	if state != BreakerClosed || count != 0 {
		t.Fatalf("expected breaker reset, got %s/%d", state, count)
	}
}

func TestExecutor_NonRetryableStopsImmediately(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(5, 30*time.Second, clock)
	exec, slept := newTestExecutor(RetryPolicy{MaxAttempts: 3}, cb, clock, nil, 0)

	calls := 0
	err := exec.Execute(context.Background(), "fetchPunches", func(context.Context) error {
		calls++
		return errors.New("malformed attendance payload")
	})

	if calls != 1 {
		t.Fatalf("expected a single attempt for non-retryable error, got %d", calls)
	}
	if len(*slept) != 0 {
		t.Fatalf("expected no backoff sleeps, got %d", len(*slept))
	}

	var cerr *ClassifiedError
	if !errors.As(err, &cerr) || cerr.Category != CategoryDataCorruption {
		t.Fatalf("expected DATA_CORRUPTION classified error, got %v", err)
	}

	_, count, _ := cb.State()
	if count != 1 {
		t.Fatalf("expected one recorded breaker failure, got %d", count)
	}
}

func TestExecutor_ExhaustsRetries(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(5, 30*time.Second, clock)
	exec, _ := newTestExecutor(RetryPolicy{MaxAttempts: 3}, cb, clock, nil, 0)

	calls := 0
	err := exec.Execute(context.Background(), "fetchPunches", func(context.Context) error {
		calls++
		return errors.New("no route to host")
	})

	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}

	var cerr *ClassifiedError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected classified error, got %v", err)
	}
	if cerr.Severity != SeverityCritical {
		t.Fatalf("expected CRITICAL severity on exhaustion, got %s", cerr.Severity)
	}
}

func TestExecutor_CircuitOpenFailsFast(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(1, 30*time.Second, clock)
	cb.RecordFailure()

	exec, _ := newTestExecutor(RetryPolicy{MaxAttempts: 3}, cb, clock, nil, 0)

	calls := 0
	err := exec.Execute(context.Background(), "fetchPunches", func(context.Context) error {
		calls++
		return nil
	})

	if calls != 0 {
		t.Fatalf("expected no attempts while circuit open, got %d", calls)
	}
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestExecutor_CriticalAlertWithCooldown(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(100, 30*time.Second, clock)

	alerts := 0
	exec, _ := newTestExecutor(RetryPolicy{MaxAttempts: 1}, cb, clock, func(_ context.Context, cerr *ClassifiedError) {
		alerts++
		if cerr.Severity != SeverityCritical {
			t.Errorf("alert fired for non-critical severity %s", cerr.Severity)
		}
	}, 5*time.Minute)

	fail := func(context.Context) error { return errors.New("unauthorized: invalid comm key") }

	if err := exec.Execute(context.Background(), "connect", fail); err == nil {
		t.Fatal("expected error")
	}
	if alerts != 1 {
		t.Fatalf("expected first failure to alert, got %d", alerts)
	}

	// クールダウン中の再通知は抑制されること。
	clock.Advance(time.Minute)
	if err := exec.Execute(context.Background(), "connect", fail); err == nil {
		t.Fatal("expected error")
	}
	if alerts != 1 {
		t.Fatalf("expected alert suppressed within cooldown, got %d", alerts)
	}

	clock.Advance(5 * time.Minute)
	if err := exec.Execute(context.Background(), "connect", fail); err == nil {
		t.Fatal("expected error")
	}
	if alerts != 2 {
		t.Fatalf("expected alert after cooldown elapsed, got %d", alerts)
	}
}

func TestExecutor_NilOperation(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(5, 30*time.Second, clock)
	exec, _ := newTestExecutor(RetryPolicy{}, cb, clock, nil, 0)

	if err := exec.Execute(context.Background(), "noop", nil); !errors.Is(err, ErrNilOperation) {
		t.Fatalf("expected ErrNilOperation, got %v", err)
	}
}
