package engine

// Snapshot captures the observable engine state at one tick, for
// determinism verification and the simulate command.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Facing    Direction
	Pending   Direction
	FoodX     int
	FoodY     int
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	head := e.snake[0]
	return Snapshot{
		Tick:      e.tick,
		Phase:     e.phase,
		Score:     e.score,
		HighScore: e.highScore,
		SnakeLen:  len(e.snake),
		HeadX:     head.X,
		HeadY:     head.Y,
		Facing:    e.facing,
		Pending:   e.pending,
		FoodX:     e.food.X,
		FoodY:     e.food.Y,
	}
}
