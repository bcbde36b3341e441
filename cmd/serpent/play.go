package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/serpent/internal/config"
	"github.com/avolkov/serpent/internal/platform/tui"
	"github.com/avolkov/serpent/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD   - Steer (also starts the game)
  Space         - Start, pause/resume, or restart
  P/Esc         - Pause
  R/Enter       - Restart (after game over)
  Q/Ctrl+C      - Quit
  Mouse         - Swipe to steer, click to start/pause

Difficulty options:
  easy   - Slow tick speed
  normal - Default tick speed
  hard   - Fast tick speed
  fixed  - Keep the config's tick speed

When --config is given the file is watched; edits to tick speed or
theme apply to the running game.

Examples:
  serpent play
  serpent play --difficulty hard
  serpent play --theme neon
  serpent play --config ./my-serpent.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme (see 'serpent themes')")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagTheme != "" {
		if _, themeErr := tui.ThemeByName(flagTheme); themeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", themeErr)
			fmt.Fprintln(os.Stderr, "Run 'serpent themes' to see available themes.")
			os.Exit(1)
		}
		cfg.Theme = flagTheme
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	p := tui.NewProgram(store, cfg, flagSeed, width, height)

	// Watch a custom config file and push changes into the running game
	if flagConfig != "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "serpent"})
		stop, watchErr := config.Watch(flagConfig, logger, func(updated config.GameConfig) {
			p.Send(tui.ConfigReloadMsg{
				TickPeriod: updated.TickPeriod(),
				Theme:      updated.Theme,
			})
		})
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not watch config: %v\n", watchErr)
		} else {
			//nolint:errcheck
			defer stop()
		}
	}

	_, runErr := p.Run()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
