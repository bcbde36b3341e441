package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/serpent/internal/platform/tui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long:  `Shows the color themes that can be selected with 'serpent play --theme'.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	names := tui.ThemeNames()

	fmt.Println("Available themes:")
	fmt.Println()

	for _, name := range names {
		marker := "  "
		if name == tui.DefaultThemeName {
			marker = "* "
		}
		fmt.Printf("  %s%s\n", marker, name)
	}

	fmt.Println()
	fmt.Println("Run 'serpent play --theme <name>' to use a theme (* = default).")
}
