// Package engine implements the Snake simulation: the state store,
// the per-tick step function, the command mapper, and the scheduler
// handle. It contains no rendering and no I/O beyond the injected
// score store; the platform reads state and paints frames.
package engine

import (
	"math/rand"
	"time"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultGridSize      = 20
	DefaultInitialLength = 3
	DefaultReward        = 10
	DefaultTickPeriod    = 135 * time.Millisecond
)

// ScoreStore persists the high score across sessions. Implementations
// must tolerate concurrent absence of data: a missing value reads as
// 0. The engine treats both methods as best-effort and never lets a
// store failure affect a simulation step.
type ScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
}

// Options configures an Engine. Zero values select the defaults
// above; Seed 0 selects a time-based seed.
type Options struct {
	GridSize      int           // Side N of the square grid
	InitialLength int           // Starting snake length
	Reward        int           // Score increment per food eaten
	TickPeriod    time.Duration // Simulation step period
	Seed          int64         // RNG seed for food placement
	Store         ScoreStore    // Optional high-score persistence
}

func (o Options) withDefaults() Options {
	if o.GridSize <= 0 {
		o.GridSize = DefaultGridSize
	}
	if o.InitialLength <= 0 {
		o.InitialLength = DefaultInitialLength
	}
	if o.Reward <= 0 {
		o.Reward = DefaultReward
	}
	if o.TickPeriod <= 0 {
		o.TickPeriod = DefaultTickPeriod
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Engine owns the complete game state. All mutation happens through
// Apply (commands) and Step (simulation ticks); there is no other
// writer. Engine is not safe for concurrent use; the platform drives
// it from a single loop.
type Engine struct {
	opts  Options
	rng   *rand.Rand
	sched Scheduler

	phase   Phase
	tick    uint64
	snake   []Cell // Head at index 0
	food    Cell
	facing  Direction // Committed last step
	pending Direction // Requested, applied next step

	score     int
	highScore int
}

// New creates an engine in the Idle phase with a fresh board. The
// stored high score is read once here; a read failure falls back to 0.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	e := &Engine{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	e.sched.period = opts.TickPeriod
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(); err == nil {
			e.highScore = hs
		}
	}
	e.spawn()
	return e
}

// spawn lays out the initial board: score 0, snake as a vertical line
// at the grid center with the head on top, facing up, fresh food.
func (e *Engine) spawn() {
	e.phase = PhaseIdle
	e.tick = 0
	e.score = 0

	n := e.opts.GridSize
	length := e.opts.InitialLength
	if length > n/2 {
		length = n / 2
	}
	if length < 1 {
		length = 1
	}

	e.snake = make([]Cell, length)
	for i := range e.snake {
		e.snake[i] = Cell{X: n / 2, Y: n/2 + i}
	}
	e.facing = DirUp
	e.pending = DirUp

	e.placeFood()
}

// Reset returns the engine to the Idle state with a fresh board.
// The high score survives; the RNG stream continues.
func (e *Engine) Reset() {
	e.sched.Cancel()
	e.spawn()
}

// placeFood draws grid cells uniformly at random until one misses the
// snake. The grid is large relative to the snake in practice, so no
// attempt bound is imposed.
func (e *Engine) placeFood() {
	n := e.opts.GridSize
	for {
		c := Cell{X: e.rng.Intn(n), Y: e.rng.Intn(n)}
		if !e.occupied(c) {
			e.food = c
			return
		}
	}
}

// occupied reports whether any snake segment is at c.
func (e *Engine) occupied(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Step advances the simulation by one cell. It is a no-op outside the
// Active phase; the scheduler guarantees it is only driven then, but
// the guard makes a stale tick harmless.
func (e *Engine) Step() {
	if e.phase != PhaseActive {
		return
	}
	e.tick++

	head := e.snake[0].Next(e.pending)

	// The pending direction becomes authoritative here and only here.
	e.facing = e.pending

	n := e.opts.GridSize
	if head.X < 0 || head.X >= n || head.Y < 0 || head.Y >= n || e.occupied(head) {
		// Collision: freeze snake, food and score; stop the scheduler.
		e.phase = PhaseTerminated
		e.sched.Cancel()
		return
	}

	e.snake = append([]Cell{head}, e.snake...)

	if head == e.food {
		e.score += e.opts.Reward
		if e.score > e.highScore {
			e.highScore = e.score
			if e.opts.Store != nil {
				//nolint:errcheck // Best-effort write-through, never blocks a step
				e.opts.Store.SaveHighScore(e.highScore)
			}
		}
		e.placeFood()
		// No tail removal: net growth of one cell.
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
}

// activate enters the Active phase and restarts the scheduler with a
// fresh period.
func (e *Engine) activate() {
	e.phase = PhaseActive
	e.sched.Start()
}

// pause leaves the Active phase and cancels the scheduler so no
// in-flight tick can still step.
func (e *Engine) pause() {
	e.phase = PhasePaused
	e.sched.Cancel()
}

// --- Read-only state accessors (the render boundary) ---

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the session high score (monotonically
// non-decreasing, mirrored from the store at construction).
func (e *Engine) HighScore() int { return e.highScore }

// Food returns the current food cell.
func (e *Engine) Food() Cell { return e.food }

// Facing returns the direction committed on the last step.
func (e *Engine) Facing() Direction { return e.facing }

// Pending returns the direction to be applied on the next step.
func (e *Engine) Pending() Direction { return e.pending }

// GridSize returns the side length N of the square grid.
func (e *Engine) GridSize() int { return e.opts.GridSize }

// Snake returns a copy of the snake body, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Scheduler returns the engine's tick scheduler handle.
func (e *Engine) Scheduler() *Scheduler { return &e.sched }
