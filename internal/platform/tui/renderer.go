package tui

import (
	"fmt"

	"github.com/avolkov/serpent/internal/core"
	"github.com/avolkov/serpent/internal/engine"
)

// Renderer paints the engine state onto a screen buffer using a theme.
// It keeps no state of its own besides the palette.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// SetTheme swaps the palette.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Theme returns the active palette.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// minBoardMargin is the screen space required around the board: two
// rows of HUD on top, the border box, and one spare row below.
const minBoardMargin = 4

// FitsBoard reports whether a screen is large enough to show the full
// board for the given grid size.
func FitsBoard(dst *core.Screen, gridSize int) bool {
	return dst.Width() >= gridSize+2 && dst.Height() >= gridSize+minBoardMargin
}

// Render draws the full frame: HUD, board, snake, food, and any
// phase overlay.
func (r *Renderer) Render(e *engine.Engine, dst *core.Screen) {
	dst.Clear()

	r.renderHUD(e, dst)

	if !FitsBoard(dst, e.GridSize()) {
		r.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	n := e.GridSize()
	// Board origin, centered below the HUD. The border box surrounds
	// the playable cells.
	offX := (dst.Width() - n) / 2
	offY := 2 + (dst.Height()-2-n)/2
	if offY < 2 {
		offY = 2
	}

	dst.DrawBoxColored(core.NewRect(offX-1, offY-1, n+2, n+2), r.theme.Border)

	for i, seg := range e.Snake() {
		glyph := 'o'
		color := r.theme.Body
		if i == 0 {
			glyph = 'O'
			color = r.theme.Head
		}
		dst.SetCell(offX+seg.X, offY+seg.Y, glyph, color)
	}

	food := e.Food()
	dst.SetCell(offX+food.X, offY+food.Y, '*', r.theme.Food)

	switch e.Phase() {
	case engine.PhaseIdle:
		r.renderOverlay(dst, "S E R P E N T", "Press an arrow key or Space to start")
	case engine.PhasePaused:
		r.renderOverlay(dst, "Paused", "Press P or Space to continue")
	case engine.PhaseTerminated:
		r.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  Press R to restart", e.Score()))
	}
}

// renderHUD draws the top status bar.
func (r *Renderer) renderHUD(e *engine.Engine, dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Best: %d", e.Score(), e.HighScore())
	dst.DrawTextColored(0, 0, hud, r.theme.HUD)

	controls := "Q: Quit"
	if len(hud)+len(controls)+2 < dst.Width() {
		dst.DrawTextColored(dst.Width()-len(controls)-1, 0, controls, r.theme.Dim)
	}

	for x := range dst.Width() {
		dst.SetCell(x, 1, '─', r.theme.Dim)
	}
}

// renderOverlay draws a centered two-line message box above the board.
func (r *Renderer) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, r.theme.Border)

	dst.DrawTextColored(boxX+(boxW-len(line1))/2, boxY+1, line1, r.theme.HUD)
	dst.DrawTextColored(boxX+(boxW-len(line2))/2, boxY+3, line2, r.theme.Dim)
}
