package device

import (
	"sync"
	"time"
)

// BreakerState はサーキットブレーカーの状態です。
type BreakerState string

const (
	BreakerClosed   BreakerState = "CLOSED"
	BreakerOpen     BreakerState = "OPEN"
	BreakerHalfOpen BreakerState = "HALF_OPEN"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// CircuitBreaker は連続失敗を追跡し、操作の実行可否を制御します。
// 1 インスタンスが 1 つのスコープ (通常は端末 1 台) を守ります。
// プロセス全体で共有してはいけません: 不健全な端末が健全な端末への
// 呼び出しを即時失敗させてしまうためです。
type CircuitBreaker struct {
	mu sync.Mutex

	state            BreakerState
	failureCount     int
	lastFailureTime  time.Time
	failureThreshold int
	recoveryTimeout  time.Duration
	clock            Clock
	onStateChange    func(from, to BreakerState)
}

// NewCircuitBreaker は CircuitBreaker を生成します。
// failureThreshold の既定値は 5、recoveryTimeout の既定値は 30 秒です。
func NewCircuitBreaker(failureThreshold int, recoveryTimeout time.Duration, clock Clock) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = 30 * time.Second
	}
	if clock == nil {
		clock = realClock{}
	}
	return &CircuitBreaker{
		state:            BreakerClosed,
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		clock:            clock,
	}
}

// SetStateChangeHook は状態遷移時に呼ばれるフックを設定します。
// フックはロックの外で呼ばれます。
func (cb *CircuitBreaker) SetStateChangeHook(fn func(from, to BreakerState)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// transition は状態を変更し、遷移があればフック呼び出しを返します。
// 呼び出し側はロック解放後に返り値を実行します。
func (cb *CircuitBreaker) transition(to BreakerState) func() {
	from := cb.state
	cb.state = to
	if from == to || cb.onStateChange == nil {
		return nil
	}
	fn := cb.onStateChange
	return func() { fn(from, to) }
}

// Allow は操作の実行可否を判定します。
// OPEN 状態で recoveryTimeout が経過していた場合は HALF_OPEN へ遷移し、
// この判定をトリガーした操作 1 回だけを通します。
func (cb *CircuitBreaker) Allow() bool {
	var notify func()
	defer func() {
		if notify != nil {
			notify()
		}
	}()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if cb.clock.Now().Sub(cb.lastFailureTime) >= cb.recoveryTimeout {
			notify = cb.transition(BreakerHalfOpen)
			return true
		}
		return false
	case BreakerHalfOpen:
		// 試行中の 1 回が決着するまで追加の操作は通しません。
		return false
	default:
		return false
	}
}

// RecordSuccess は成功を記録し、状態を CLOSED に戻します。
func (cb *CircuitBreaker) RecordSuccess() {
	var notify func()
	defer func() {
		if notify != nil {
			notify()
		}
	}()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	notify = cb.transition(BreakerClosed)
	cb.failureCount = 0
}

// RecordFailure は失敗を記録します。
// CLOSED では failureCount が閾値に達すると OPEN へ遷移し、
// HALF_OPEN では即座に OPEN へ戻ります。
func (cb *CircuitBreaker) RecordFailure() {
	var notify func()
	defer func() {
		if notify != nil {
			notify()
		}
	}()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.clock.Now()

	switch cb.state {
	case BreakerHalfOpen:
		notify = cb.transition(BreakerOpen)
		cb.lastFailureTime = now
	case BreakerClosed:
		cb.failureCount++
		if cb.failureCount >= cb.failureThreshold {
			notify = cb.transition(BreakerOpen)
			cb.lastFailureTime = now
		}
	case BreakerOpen:
		cb.lastFailureTime = now
	}
}

// State は現在の状態のスナップショットを返します。
func (cb *CircuitBreaker) State() (BreakerState, int, time.Time) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state, cb.failureCount, cb.lastFailureTime
}
