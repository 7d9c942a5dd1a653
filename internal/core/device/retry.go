package device

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RetryPolicy は再試行の上限と対象カテゴリを定義します。
type RetryPolicy struct {
	MaxAttempts int
	Retryable   []Category
}

// DefaultRetryPolicy は既定のポリシー (3 回、ネットワーク系のみ再試行) を返します。
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Retryable:   []Category{CategoryNetwork, CategoryTimeout, CategoryDeviceUnavailable},
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.Retryable == nil {
		p.Retryable = []Category{CategoryNetwork, CategoryTimeout, CategoryDeviceUnavailable}
	}
	return p
}

// AlertFunc は CRITICAL と分類された失敗の通知フックです。
type AlertFunc func(ctx context.Context, cerr *ClassifiedError)

// Executor は失敗し得る操作をサーキットブレーカー・バックオフ・
// エラー分類と組み合わせて実行します。1 回の Execute 呼び出し内の試行は
// 逐次実行です。同一ブレーカーに対する複数の Execute は並行して動作できます。
type Executor struct {
	policy   RetryPolicy
	backoff  *Backoff
	breaker  *CircuitBreaker
	clock    Clock
	alert    AlertFunc
	cooldown time.Duration

	// sleep はテストで差し替えるためのフックです。
	sleep func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	lastAlertAt time.Time
}

// NewExecutor は Executor を生成します。breaker は必須です。
// alert が nil の場合、通知は行われません。cooldown の既定値は 5 分です。
func NewExecutor(policy RetryPolicy, backoff *Backoff, breaker *CircuitBreaker, clock Clock, alert AlertFunc, cooldown time.Duration) *Executor {
	if backoff == nil {
		backoff = NewBackoff(0, 0, 0)
	}
	if clock == nil {
		clock = realClock{}
	}
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}
	return &Executor{
		policy:   policy.normalized(),
		backoff:  backoff,
		breaker:  breaker,
		clock:    clock,
		alert:    alert,
		cooldown: cooldown,
		sleep:    sleepContext,
	}
}

// Execute は operation を再試行付きで実行します。
// ブレーカーが拒否した場合は試行を消費せず ErrCircuitOpen を返します。
// 再試行対象外のカテゴリは即座に伝播します。
func (e *Executor) Execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return ErrNilOperation
	}

	if !e.breaker.Allow() {
		return fmt.Errorf("%s: %w", operation, ErrCircuitOpen)
	}

	var lastErr *ClassifiedError

	for attempt := 0; attempt < e.policy.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			e.breaker.RecordSuccess()
			return nil
		}

		lastErr = Classify(err, operation, attempt, e.policy.MaxAttempts)

		if !lastErr.Retryable(e.policy.Retryable) || attempt == e.policy.MaxAttempts-1 {
			break
		}

		if err := e.sleep(ctx, e.backoff.Delay(attempt)); err != nil {
			break
		}
	}

	e.breaker.RecordFailure()

	if lastErr.Severity == SeverityCritical {
		e.notify(ctx, lastErr)
	}

	return lastErr
}

// notify は通知ストームを避けるため cooldown 以内の再通知を抑制します。
func (e *Executor) notify(ctx context.Context, cerr *ClassifiedError) {
	if e.alert == nil {
		return
	}

	e.mu.Lock()
	now := e.clock.Now()
	if !e.lastAlertAt.IsZero() && now.Sub(e.lastAlertAt) < e.cooldown {
		e.mu.Unlock()
		return
	}
	e.lastAlertAt = now
	e.mu.Unlock()

	e.alert(ctx, cerr)
}

// sleepContext はロックやトランザクションを保持せずに待機します。
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
