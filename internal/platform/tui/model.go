package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/platform/session"
	"github.com/vovakirdan/tui-doodle/internal/registry"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// Options configures a game Model. Zero values are usable.
type Options struct {
	Store      *storage.Store      // Optional; runs are saved on death when set
	Logger     *log.Logger         // Optional; discards output when nil
	Sound      session.SoundPlayer // Optional
	MaxFrameDT float64             // Upper bound on dt in seconds; 0 means no bound
	HoldWindow time.Duration       // How long a key counts as held after its last press
	Player     string              // Recorded with saved runs
	Embedded   bool                // Running inside the menu; B returns to it
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	hold      *HoldTracker
	lastTick  time.Time
	gameState core.GameState
	recorder  *session.Recorder
	clock     func() time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and boots it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 150 * time.Millisecond
	}

	game.Reset(cfg)
	recorder := session.NewRecorder(game.ID(), cfg.Seed, session.Config{
		Store:  opts.Store,
		Logger: opts.Logger,
		Sound:  opts.Sound,
		Player: opts.Player,
	}, time.Now())

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		keys:      NewKeyMapper(),
		hold:      NewHoldTracker(opts.HoldWindow),
		gameState: game.State(),
		recorder:  recorder,
		clock:     time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is fitted on every render, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.BlurMsg:
		// Key repeats stop while the terminal is unfocused.
		m.hold.Release()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.opts.Embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, tea.Quit
		}
	default:
		m.hold.Press(action, m.clock())
	}
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate, m.opts.MaxFrameDT)
	m.lastTick = now

	result := m.game.Step(dt, m.hold.Frame(now))
	m.gameState = result.State
	m.recorder.Handle(result.Events, now)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}

// RunEmbedded runs the game from the start menu. It reports whether the
// player asked to go back to the menu rather than quit.
func RunEmbedded(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	opts.Embedded = true
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen(), tea.WithReportFocus())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
