// serpent is a terminal Snake game.
//
// Usage:
//
//	serpent play             - Play in the current terminal
//	serpent scores           - Show the high score table
//	serpent themes           - List available color themes
//	serpent simulate         - Run a headless game and print the result
//	serpent serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.serpent/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Serpent - Snake in your terminal",
	Long: `Serpent is a terminal rendition of the classic Snake game.

Steer the snake onto food to grow and score; hitting a wall or your
own body ends the run. High scores persist across sessions.

Available commands:
  play      - Play in the current terminal
  scores    - View the high score table
  themes    - List color themes
  simulate  - Run a headless game and print the result
  serve     - Start SSH server for remote play

Examples:
  serpent play
  serpent play --difficulty hard --theme neon
  serpent scores
  serpent serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}
