package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/serpent/internal/config"
	"github.com/avolkov/serpent/internal/engine"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and print the result",
	Long: `Run the simulation without a terminal UI, steered by a simple
built-in bot, and print the outcome. Useful for benchmarking rule
changes and for reproducing games from a seed.

Examples:
  serpent simulate
  serpent simulate --ticks 2000
  serpent simulate --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(engine.Options{
		GridSize:      cfg.Grid.Size,
		InitialLength: cfg.Grid.InitialLength,
		Reward:        cfg.Rules.Reward,
		TickPeriod:    cfg.TickPeriod(),
		Seed:          flagSeed,
	})

	eng.Apply(engine.ActivateCommand())

	for i := 0; i < flagTicks && eng.Phase() == engine.PhaseActive; i++ {
		if d, ok := pickDirection(eng); ok {
			eng.Apply(engine.DirectionCommand(d))
		}
		eng.Step()
	}

	snap := eng.Snapshot()
	fmt.Printf("Ticks:     %d\n", snap.Tick)
	fmt.Printf("Phase:     %s\n", snap.Phase)
	fmt.Printf("Score:     %d\n", snap.Score)
	fmt.Printf("Length:    %d\n", snap.SnakeLen)
	fmt.Printf("Head:      (%d, %d)\n", snap.HeadX, snap.HeadY)
}

// pickDirection is a greedy bot: move toward the food along the axis
// with the larger distance, falling back to any move that does not hit
// a wall or the body.
func pickDirection(e *engine.Engine) (engine.Direction, bool) {
	head := e.Snake()[0]
	food := e.Food()

	dx := food.X - head.X
	dy := food.Y - head.Y

	var prefs []engine.Direction
	if abs(dx) >= abs(dy) {
		prefs = append(prefs, horizontal(dx), vertical(dy))
	} else {
		prefs = append(prefs, vertical(dy), horizontal(dx))
	}
	prefs = append(prefs, engine.DirUp, engine.DirDown, engine.DirLeft, engine.DirRight)

	for _, d := range prefs {
		if d == e.Facing().Opposite() {
			continue
		}
		if safeMove(e, head.Next(d)) {
			return d, true
		}
	}
	return 0, false
}

// safeMove reports whether moving the head to c survives the next step.
func safeMove(e *engine.Engine, c engine.Cell) bool {
	n := e.GridSize()
	if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
		return false
	}
	for _, seg := range e.Snake() {
		if seg == c {
			return false
		}
	}
	return true
}

func horizontal(dx int) engine.Direction {
	if dx < 0 {
		return engine.DirLeft
	}
	return engine.DirRight
}

func vertical(dy int) engine.Direction {
	if dy < 0 {
		return engine.DirUp
	}
	return engine.DirDown
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
