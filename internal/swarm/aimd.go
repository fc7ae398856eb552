package swarm

import (
	"sync"
	"time"
)

// AIMD tracks a concurrency target with additive increase and multiplicative
// decrease. Throttle feedback halves the target; sustained success raises it
// by one. With min == max the target is fixed and feedback is a no-op.
type AIMD struct {
	mu         sync.Mutex
	target     int
	min        int
	max        int
	lastChange time.Time
}

// NewAIMD creates a controller starting at start, clamped to [min, max].
func NewAIMD(start, min, max int) *AIMD {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	if start < min {
		start = min
	}
	if start > max {
		start = max
	}
	return &AIMD{target: start, min: min, max: max, lastChange: time.Now()}
}

// Concurrency returns the current target.
func (a *AIMD) Concurrency() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

// Feedback adjusts the target. Changes are rate limited to dampen
// oscillation under bursty feedback.
func (a *AIMD) Feedback(throttled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.min == a.max {
		return
	}

	now := time.Now()
	if now.Sub(a.lastChange) < 100*time.Millisecond {
		return
	}

	if throttled {
		a.target /= 2
		if a.target < a.min {
			a.target = a.min
		}
		a.lastChange = now
		return
	}

	if a.target < a.max {
		a.target++
		a.lastChange = now
	}
}
