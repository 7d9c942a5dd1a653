package device

import (
	"testing"
	"time"
)

func TestBackoff_Bounds(t *testing.T) {
	t.Parallel()

	b := NewBackoff(time.Second, 2, 10*time.Second)

	for attempt := 0; attempt < 10; attempt++ {
		d := b.Delay(attempt)

		floor := time.Second << attempt
		if floor > 10*time.Second {
			floor = 10 * time.Second
		}

		if d < floor {
			t.Errorf("attempt %d: delay %v below floor %v", attempt, d, floor)
		}

		ceiling := time.Duration(float64(10*time.Second) * 1.1)
		if d > ceiling {
			t.Errorf("attempt %d: delay %v above ceiling %v", attempt, d, ceiling)
		}
	}
}

func TestBackoff_MonotoneBeforeJitter(t *testing.T) {
	t.Parallel()

	b := NewBackoff(time.Second, 2, 10*time.Second)
	b.rand = func() float64 { return 0 }

	prev := time.Duration(-1)
	for attempt := 0; attempt < 12; attempt++ {
		d := b.Delay(attempt)
		if d < prev {
			t.Fatalf("attempt %d: delay %v decreased from %v", attempt, d, prev)
		}
		prev = d
	}
}

func TestBackoff_CapsAtMax(t *testing.T) {
	t.Parallel()

	b := NewBackoff(time.Second, 2, 10*time.Second)
	b.rand = func() float64 { return 0 }

	if d := b.Delay(30); d != 10*time.Second {
		t.Fatalf("expected capped delay 10s, got %v", d)
	}
}

func TestBackoff_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBackoff(0, 0, 0)

	if b.Base != time.Second || b.Multiplier != 2 || b.Max != 10*time.Second {
		t.Fatalf("unexpected defaults: base=%v multiplier=%v max=%v", b.Base, b.Multiplier, b.Max)
	}
}
