package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/serpent/internal/config"
	"github.com/avolkov/serpent/internal/core"
	"github.com/avolkov/serpent/internal/engine"
	"github.com/avolkov/serpent/internal/storage"
)

// GameID identifies this game in the score database.
const GameID = "serpent"

// GameModel is the Bubble Tea model driving a single game of Snake.
// It owns the engine, translates input into engine commands, and arms
// one timer per scheduler generation.
type GameModel struct {
	eng       *engine.Engine
	screen    *core.Screen
	store     *storage.Store
	renderer  *Renderer
	keyMapper *KeyMapper
	gestures  GestureTracker

	// scheduled is the last scheduler handle a tick was armed for.
	// Arming is idempotent per generation: the handle only moves
	// forward when the scheduler starts a new one.
	scheduled engine.TickHandle

	quitting   bool
	backToMenu bool
	allowBack  bool // Esc/B returns to a session menu instead of being pause-only
	runSaved   bool // Whether the finished run's score has been recorded
}

// NewGameModel creates a game model for the given configuration.
// The store may be nil; scores are then simply not persisted.
func NewGameModel(store *storage.Store, cfg config.GameConfig, seed int64, width, height int) GameModel {
	theme, _ := ThemeByName(cfg.Theme)

	var scoreStore engine.ScoreStore
	if store != nil {
		scoreStore = store.GameScore(GameID)
	}

	eng := engine.New(engine.Options{
		GridSize:      cfg.Grid.Size,
		InitialLength: cfg.Grid.InitialLength,
		Reward:        cfg.Rules.Reward,
		TickPeriod:    cfg.TickPeriod(),
		Seed:          seed,
		Store:         scoreStore,
	})

	return GameModel{
		eng:       eng,
		screen:    core.NewScreen(width, height),
		store:     store,
		renderer:  NewRenderer(theme),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model. The engine starts in the idle phase, so
// no timer is armed until the first input activates it.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// In session mode, back out to the menu from a rest state rather
	// than toggling pause again.
	if m.allowBack {
		key := msg.String()
		phase := m.eng.Phase()
		if (key == "b" || key == "esc") && (phase == engine.PhasePaused || phase == engine.PhaseTerminated) {
			m.backToMenu = true
			return m, nil
		}
	}

	return m.apply(engine.CommandForAction(action))
}

// handleMouse tracks press/release pairs and classifies the gesture.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.gestures.Press(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if cmd, ok := m.gestures.Release(msg.X, msg.Y); ok {
			return m.apply(cmd)
		}
	}
	return m, nil
}

// apply runs a command through the engine and arms the timer if the
// scheduler came up on a new generation.
func (m GameModel) apply(cmd engine.Command) (tea.Model, tea.Cmd) {
	wasTerminated := m.eng.Phase() == engine.PhaseTerminated
	m.eng.Apply(cmd)
	if wasTerminated && m.eng.Phase() == engine.PhaseIdle {
		m.runSaved = false
	}
	return m, m.armTick()
}

// handleTick processes one simulation step. Stale ticks, armed before
// a pause, restart, or game over invalidated their generation, are
// dropped without touching the engine.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	sched := m.eng.Scheduler()
	if !sched.Valid(msg.Handle) {
		return m, nil
	}

	m.eng.Step()

	if m.eng.Phase() == engine.PhaseTerminated && !m.runSaved {
		if m.store != nil && m.eng.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(GameID, m.eng.Score())
		}
		m.runSaved = true
	}

	// The generation is unchanged while the game keeps running, so
	// re-arm for the same handle directly.
	if sched.Valid(msg.Handle) {
		return m, tickCmd(sched.Period(), msg.Handle)
	}
	return m, nil
}

// handleReload applies a changed config file to the running game.
// Tick period and theme take effect immediately; grid changes need a
// fresh process since the board is fixed at engine creation.
func (m GameModel) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if msg.TickPeriod > 0 {
		m.eng.Scheduler().SetPeriod(msg.TickPeriod)
	}
	if theme, err := ThemeByName(msg.Theme); err == nil {
		m.renderer.SetTheme(theme)
	}
	return m, nil
}

// armTick arms one timer for the scheduler's current generation. It is
// a no-op when the scheduler is stopped or the generation already has
// a timer in flight.
func (m *GameModel) armTick() tea.Cmd {
	sched := m.eng.Scheduler()
	if !sched.Running() || sched.Handle() == m.scheduled {
		return nil
	}
	m.scheduled = sched.Handle()
	return tickCmd(sched.Period(), m.scheduled)
}

// View renders the current state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.eng, m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// NewProgram wraps a game model in a Bubble Tea program with the
// standard options. The caller runs it and may Send ConfigReloadMsg
// into it from a config watcher.
func NewProgram(store *storage.Store, cfg config.GameConfig, seed int64, width, height int) *tea.Program {
	model := NewGameModel(store, cfg, seed, width, height)

	return tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Swipe and tap input
	)
}
