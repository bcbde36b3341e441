package engine

import "time"

// TickHandle identifies one scheduling generation. A handle issued by
// Start is invalidated by any subsequent Start or Cancel, so a tick
// that was already in flight when the phase changed is dropped rather
// than stepped.
type TickHandle uint64

// Scheduler is the engine-owned tick schedule: an explicit
// start/cancel value scoped to the engine instance. It does not keep
// time itself — the platform schedules real timers for Period() and
// tags each one with the current handle, consulting Valid before
// stepping. That keeps cancellation synchronous and deterministic,
// and testable without a clock.
type Scheduler struct {
	period  time.Duration
	gen     TickHandle
	running bool
}

// Start begins a new scheduling generation with a fresh period and
// returns its handle. Any previously issued handle becomes stale.
func (s *Scheduler) Start() TickHandle {
	s.gen++
	s.running = true
	return s.gen
}

// Cancel stops the schedule. All outstanding handles become stale
// immediately.
func (s *Scheduler) Cancel() {
	s.gen++
	s.running = false
}

// Running reports whether the schedule is active.
func (s *Scheduler) Running() bool { return s.running }

// Handle returns the current generation. Only meaningful while
// Running.
func (s *Scheduler) Handle() TickHandle { return s.gen }

// Valid reports whether a tick carrying h may execute a step.
func (s *Scheduler) Valid(h TickHandle) bool {
	return s.running && h == s.gen
}

// Period returns the fixed tick period.
func (s *Scheduler) Period() time.Duration { return s.period }

// SetPeriod changes the tick period. It applies from the next
// scheduled tick; it does not disturb the current generation.
func (s *Scheduler) SetPeriod(d time.Duration) {
	if d > 0 {
		s.period = d
	}
}
