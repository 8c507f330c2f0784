package reveal

import (
	"testing"
	"time"
)

func TestEngineRevealsOnePerTick(t *testing.T) {
	for _, interval := range []time.Duration{0, time.Millisecond, 15 * time.Millisecond, time.Hour} {
		e := New(5, interval, nil)
		if e.State() != StateEmpty {
			t.Fatalf("initial state = %s, want empty", e.State())
		}
		for i := 1; i <= 5; i++ {
			if !e.Tick() {
				t.Fatalf("tick %d did not advance", i)
			}
			if e.Visible() != i {
				t.Fatalf("after %d ticks visible = %d", i, e.Visible())
			}
		}
		if !e.Done() || e.State() != StateDone {
			t.Fatalf("engine should be done after N ticks, state=%s", e.State())
		}
		if e.Tick() {
			t.Fatalf("tick after done must be a no-op")
		}
		if e.Visible() != 5 {
			t.Fatalf("visible exceeded total: %d", e.Visible())
		}
	}
}

func TestEngineStates(t *testing.T) {
	e := New(2, 0, nil)
	e.Tick()
	if e.State() != StateRevealing {
		t.Fatalf("state = %s, want revealing", e.State())
	}
	if got := New(0, 0, nil).State(); got != StateDone {
		t.Fatalf("empty sequence state = %s, want done", got)
	}
	if got := New(-3, 0, nil).Total(); got != 0 {
		t.Fatalf("negative total should clamp to 0, got %d", got)
	}
}

func TestEngineDefaultInterval(t *testing.T) {
	if got := New(1, 0, nil).Interval(); got != DefaultInterval {
		t.Fatalf("Interval() = %v, want %v", got, DefaultInterval)
	}
	if got := New(1, 15*time.Millisecond, nil).Interval(); got != 15*time.Millisecond {
		t.Fatalf("Interval() = %v, want 15ms", got)
	}
}

func TestEngineCallbackAfterEveryIncrement(t *testing.T) {
	var seen []int
	e := New(3, 0, func(visible int) { seen = append(seen, visible) })
	for e.Tick() {
	}
	want := []int{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("callbacks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("callbacks = %v, want %v", seen, want)
		}
	}
}

func TestNilEngine(t *testing.T) {
	var e *Engine
	if e.Tick() || e.Visible() != 0 || e.Total() != 0 || !e.Done() {
		t.Fatalf("nil engine should behave as an empty finished engine")
	}
}
