package device

import (
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func (s *stubClock) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(3, 30*time.Second, clock)

	for i := 0; i < 2; i++ {
		cb.RecordFailure()
		if !cb.Allow() {
			t.Fatalf("breaker should stay closed below threshold (failure %d)", i+1)
		}
	}

	cb.RecordFailure()

	if cb.Allow() {
		t.Fatal("breaker should deny calls after reaching failure threshold")
	}

	state, count, _ := cb.State()
	if state != BreakerOpen || count != 3 {
		t.Fatalf("expected OPEN with 3 failures, got %s/%d", state, count)
	}
}

func TestCircuitBreaker_HalfOpenTrial(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(1, 30*time.Second, clock)

	cb.RecordFailure()
	if cb.Allow() {
		t.Fatal("breaker should be open")
	}

	clock.Advance(30 * time.Second)

	if !cb.Allow() {
		t.Fatal("breaker should allow one trial after recovery timeout")
	}

	// HALF_OPEN 中は追加の操作を通さないこと。
	if cb.Allow() {
		t.Fatal("breaker should allow exactly one trial in half-open")
	}

	cb.RecordSuccess()

	state, count, _ := cb.State()
	if state != BreakerClosed || count != 0 {
		t.Fatalf("expected CLOSED with reset count, got %s/%d", state, count)
	}
	if !cb.Allow() {
		t.Fatal("breaker should allow calls after successful trial")
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(1, 30*time.Second, clock)

	cb.RecordFailure()
	clock.Advance(30 * time.Second)

	if !cb.Allow() {
		t.Fatal("breaker should allow trial call")
	}

	trialFailedAt := clock.now
	cb.RecordFailure()

	state, _, lastFailure := cb.State()
	if state != BreakerOpen {
		t.Fatalf("expected OPEN after failed trial, got %s", state)
	}
	if !lastFailure.Equal(trialFailedAt) {
		t.Fatalf("expected fresh lastFailureTime %v, got %v", trialFailedAt, lastFailure)
	}

	// 新しい lastFailureTime からタイムアウトを数え直すこと。
	clock.Advance(29 * time.Second)
	if cb.Allow() {
		t.Fatal("breaker should stay open until a fresh recovery timeout elapses")
	}

	clock.Advance(time.Second)
	if !cb.Allow() {
		t.Fatal("breaker should allow a new trial after the fresh timeout")
	}
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	t.Parallel()

	cb := NewCircuitBreaker(0, 0, nil)

	if cb.failureThreshold != 5 {
		t.Errorf("expected default threshold 5, got %d", cb.failureThreshold)
	}
	if cb.recoveryTimeout != 30*time.Second {
		t.Errorf("expected default recovery timeout 30s, got %v", cb.recoveryTimeout)
	}
}

func TestCircuitBreaker_StateChangeHook(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(2, 30*time.Second, clock)

	var transitions []string
	cb.SetStateChangeHook(func(from, to BreakerState) {
		transitions = append(transitions, string(from)+"->"+string(to))
	})

	cb.RecordFailure()
	cb.RecordFailure() // CLOSED -> OPEN

	clock.Advance(30 * time.Second)
	cb.Allow()         // OPEN -> HALF_OPEN
	cb.RecordSuccess() // HALF_OPEN -> CLOSED

	want := []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}
	if len(transitions) != len(want) {
		t.Fatalf("expected %d transitions, got %v", len(want), transitions)
	}
	for i, tr := range want {
		if transitions[i] != tr {
			t.Fatalf("transition %d: expected %s, got %s", i, tr, transitions[i])
		}
	}
}
