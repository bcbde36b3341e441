package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/avolkov/serpent/internal/core"
)

// Theme assigns colors to the board elements. Themes change only the
// palette; glyphs and layout stay the same.
type Theme struct {
	Name   string
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Border core.Color
	HUD    core.Color
	Dim    core.Color
}

var themes = map[string]Theme{
	"classic": {
		Name:   "classic",
		Head:   core.ColorBrightGreen,
		Body:   core.ColorGreen,
		Food:   core.ColorBrightRed,
		Border: core.ColorWhite,
		HUD:    core.ColorBrightWhite,
		Dim:    core.ColorGray,
	},
	"neon": {
		Name:   "neon",
		Head:   core.ColorBrightCyan,
		Body:   core.ColorBrightMagenta,
		Food:   core.ColorBrightYellow,
		Border: core.ColorBrightBlue,
		HUD:    core.ColorBrightCyan,
		Dim:    core.ColorBlue,
	},
	"mono": {
		Name:   "mono",
		Head:   core.ColorBrightWhite,
		Body:   core.ColorWhite,
		Food:   core.ColorBrightWhite,
		Border: core.ColorGray,
		HUD:    core.ColorWhite,
		Dim:    core.ColorGray,
	},
}

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "classic"

// ThemeByName looks up a theme. Unknown names fall back to the
// classic theme and return an error so callers can warn.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}
	t, ok := themes[name]
	if !ok {
		return themes[DefaultThemeName], fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ansiCodes maps the palette to terminal ANSI color codes. The board
// themes above pick from this palette; the screen renderer resolves
// each cell color through it.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// styleFor returns the lipgloss style for a palette color.
// Unknown colors render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
