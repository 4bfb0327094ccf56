// Package timer implements frame-driven countdown timers.
package timer

import "time"

type Mode uint8

const (
	Once Mode = iota
	Repeating
)

// Timer accumulates ticked time against a duration. It does not read the clock;
// callers feed it frame deltas through Tick.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     Mode

	finished      bool
	timesThisTick uint32
}

func New(duration time.Duration, mode Mode) Timer {
	return Timer{duration: duration, mode: mode}
}

// FromSeconds builds a timer from a float duration.
func FromSeconds(seconds float64, mode Mode) Timer {
	return New(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer. A repeating timer wraps and keeps the overflow;
// a once timer clamps at its duration and stays finished.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.timesThisTick = 0

	if t.mode == Once && t.finished {
		return t
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		t.finished = false
		return t
	}

	t.finished = true
	switch t.mode {
	case Repeating:
		if t.duration > 0 {
			t.timesThisTick = uint32(t.elapsed / t.duration)
			t.elapsed %= t.duration
		} else {
			t.timesThisTick = 1
			t.elapsed = 0
		}
	default:
		t.timesThisTick = 1
		t.elapsed = t.duration
	}
	return t
}

// JustFinished reports whether the last Tick completed at least one cycle.
func (t *Timer) JustFinished() bool {
	return t.timesThisTick > 0
}

// Finished reports whether the timer has reached its duration. For repeating
// timers this only holds for the tick that wrapped.
func (t *Timer) Finished() bool {
	if t.mode == Repeating {
		return t.JustFinished()
	}
	return t.finished
}

// TimesFinishedThisTick returns how many cycles the last Tick completed.
func (t *Timer) TimesFinishedThisTick() uint32 {
	return t.timesThisTick
}

// SetDuration changes the duration without resetting elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

func (t *Timer) Duration() time.Duration { return t.duration }
func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Mode() Mode              { return t.mode }

// Remaining returns the time left in the current cycle.
func (t *Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesThisTick = 0
}
