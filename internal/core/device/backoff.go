package device

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff は指数バックオフの遅延を計算します。
// ジッター項を除けば attempt に対して単調非減少です。
type Backoff struct {
	Base       time.Duration
	Multiplier float64
	Max        time.Duration

	// rand はテストで固定するためのフックです。nil の場合は rand.Float64 を使います。
	rand func() float64
}

// NewBackoff は既定値 (base=1s, multiplier=2, max=10s) を補った Backoff を返します。
func NewBackoff(base time.Duration, multiplier float64, max time.Duration) *Backoff {
	if base <= 0 {
		base = time.Second
	}
	if multiplier <= 1 {
		multiplier = 2
	}
	if max <= 0 {
		max = 10 * time.Second
	}
	return &Backoff{Base: base, Multiplier: multiplier, Max: max}
}

// Delay は attempt (0 始まり) 回目の再試行前に待つ時間を返します。
// delay = min(base * multiplier^attempt, max) + uniform(0, 0.1*delay)
func (b *Backoff) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	raw := float64(b.Base) * math.Pow(b.Multiplier, float64(attempt))
	capped := math.Min(raw, float64(b.Max))

	jitter := capped * 0.1 * b.random()

	return time.Duration(capped + jitter)
}

func (b *Backoff) random() float64 {
	if b.rand != nil {
		return b.rand()
	}
	return rand.Float64()
}
