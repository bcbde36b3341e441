package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice identifies an entry of the session menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceThemes
	MenuChoiceQuit
)

// menuEntry pairs a choice with its label.
type menuEntry struct {
	choice MenuChoice
	label  string
}

// MenuModel is the Bubble Tea model for the session menu, shown at the
// start of an SSH session.
type MenuModel struct {
	entries    []menuEntry
	cursor     int
	width      int
	height     int
	themeNames []string
	themeIdx   int
	keyMapper  *KeyMapper
	quitting   bool
	selected   MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int, themeName string) MenuModel {
	names := ThemeNames()
	themeIdx := 0
	for i, n := range names {
		if n == themeName {
			themeIdx = i
			break
		}
	}

	return MenuModel{
		entries: []menuEntry{
			{MenuChoicePlay, "Play"},
			{MenuChoiceScores, "High Scores"},
			{MenuChoiceThemes, "Theme"},
			{MenuChoiceQuit, "Quit"},
		},
		width:      width,
		height:     height,
		themeNames: names,
		themeIdx:   themeIdx,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.entries[m.cursor].choice
		if choice == MenuChoiceThemes {
			// Cycle through themes in place
			m.themeIdx = (m.themeIdx + 1) % len(m.themeNames)
			return m, nil
		}
		m.selected = choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S E R P E N T", m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		label := entry.label
		if entry.choice == MenuChoiceThemes {
			label = fmt.Sprintf("Theme: %s", m.themeNames[m.themeIdx])
		}

		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen menu entry, or MenuChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// ThemeName returns the currently cycled theme name.
func (m MenuModel) ThemeName() string {
	return m.themeNames[m.themeIdx]
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
