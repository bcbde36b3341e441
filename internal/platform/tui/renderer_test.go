package tui

import (
	"strings"
	"testing"

	"github.com/avolkov/serpent/internal/core"
	"github.com/avolkov/serpent/internal/engine"
)

func TestRenderDrawsSnakeAndFood(t *testing.T) {
	eng := engine.New(engine.Options{Seed: 1})
	r := NewRenderer(themes["classic"])
	screen := core.NewScreen(80, 30)

	eng.Apply(engine.ActivateCommand())
	r.Render(eng, screen)

	out := screen.String()
	if !strings.ContainsRune(out, 'O') {
		t.Error("frame should contain the snake head")
	}
	if !strings.ContainsRune(out, 'o') {
		t.Error("frame should contain snake body segments")
	}
	if !strings.ContainsRune(out, '*') {
		t.Error("frame should contain the food")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func TestRenderHeadUsesThemeColor(t *testing.T) {
	eng := engine.New(engine.Options{Seed: 1})
	theme := themes["classic"]
	r := NewRenderer(theme)
	screen := core.NewScreen(80, 30)

	eng.Apply(engine.ActivateCommand())
	r.Render(eng, screen)

	n := eng.GridSize()
	offX := (screen.Width() - n) / 2
	offY := 2 + (screen.Height()-2-n)/2
	head := eng.Snake()[0]

	cell := screen.GetCell(offX+head.X, offY+head.Y)
	if cell.Rune != 'O' {
		t.Fatalf("head cell should be 'O', got %q", cell.Rune)
	}
	if cell.Color != theme.Head {
		t.Errorf("head color = %v, expected %v", cell.Color, theme.Head)
	}
}

func TestRenderTooSmall(t *testing.T) {
	eng := engine.New(engine.Options{Seed: 1})
	r := NewRenderer(themes["classic"])
	screen := core.NewScreen(15, 10)

	r.Render(eng, screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("undersized screen should show the resize prompt")
	}
}

func TestRenderPhaseOverlays(t *testing.T) {
	eng := engine.New(engine.Options{Seed: 1})
	r := NewRenderer(themes["classic"])
	screen := core.NewScreen(80, 30)

	r.Render(eng, screen)
	if !strings.Contains(screen.String(), "start") {
		t.Error("idle frame should invite the player to start")
	}

	eng.Apply(engine.ActivateCommand())
	eng.Apply(engine.PauseResumeCommand())
	r.Render(eng, screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused frame should show the pause overlay")
	}
}

func TestThemeColorsHavePaletteEntries(t *testing.T) {
	for name, theme := range themes {
		colors := []core.Color{theme.Head, theme.Body, theme.Food, theme.Border, theme.HUD, theme.Dim}
		for _, c := range colors {
			if c == core.ColorDefault {
				continue
			}
			if _, ok := ansiCodes[c]; !ok {
				t.Errorf("theme %q uses color %v with no ANSI mapping", name, c)
			}
		}
	}
}

func TestRenderScreenUncoloredPassthrough(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("uncolored screen should render verbatim, got %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q) returned error: %v", name, err)
		}
		if theme.Name != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, theme.Name)
		}
	}

	theme, err := ThemeByName("nosuch")
	if err == nil {
		t.Error("unknown theme should return an error")
	}
	if theme.Name != DefaultThemeName {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultThemeName, theme.Name)
	}

	if theme, _ := ThemeByName(""); theme.Name != DefaultThemeName {
		t.Error("empty name should select the default theme")
	}
}
