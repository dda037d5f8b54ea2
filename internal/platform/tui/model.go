package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/audio"
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/input"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

const statusHeight = 1 // Rows below the playfield

// DefaultHoldWindow is how long a key counts as held after its last press.
// It is longer than the usual delay before keyboard auto-repeat kicks in
// (250-500ms on most systems).
const DefaultHoldWindow = 600 * time.Millisecond

// Game is what the runner needs from a game on top of registry.Game.
type Game interface {
	registry.Game
	Field() arkanoid.Field
	Paddle() arkanoid.Paddle
	Round() arkanoid.State
	Outcome() arkanoid.Outcome
	Stats() arkanoid.Stats
	Config() config.ArkanoidConfig
	ConfigErr() error
}

var _ Game = (*arkanoid.Game)(nil)

// AsGame checks that a registered game can be driven by the runner.
func AsGame(g registry.Game) (Game, error) {
	game, ok := g.(Game)
	if !ok {
		return nil, fmt.Errorf("tui: game %q cannot be played in the terminal", g.ID())
	}
	return game, nil
}

// Options configures a game model. Zero values are replaced by defaults.
type Options struct {
	Store      *storage.Store
	Audio      arkanoid.Audio
	Logger     *log.Logger
	HoldWindow time.Duration // How long a key counts as held after its last press
	Embedded   bool          // Esc returns control to the caller instead of quitting
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	listeners  core.ListenerSet
	gameState  core.GameState
	best       int
	lastRunID  string
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current finished round has been saved
}

// NewModel creates a new Bubble Tea model for the given game and starts
// its first round.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		holds:  NewHoldTracker(HoldTicks(opts.HoldWindow, cfg.TickRate)),
	}

	m.game.Reset(m.config)
	if err := m.game.ConfigErr(); err != nil {
		m.opts.Logger.Warn("using default config", "game", m.game.ID(), "error", err)
	}
	m.listeners = m.game.Listeners()
	m.gameState = m.game.State()
	m.best = m.loadBest()

	return m
}

// playfieldHeight returns the rows left for the field under a screen of h rows.
func playfieldHeight(h int) int {
	return max(h-statusHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Presses become key-downs right away;
// the matching key-ups come from the hold tracker on later ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		if m.gameState.GameOver {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	code, ok := m.keys.KeyCode(msg)
	if !ok {
		return m, nil
	}

	if m.holds.Press(code) {
		m.dispatch(input.RawEvent{Kind: input.EventKeyDown, Code: code})
	}
	return m, nil
}

// handleMouse processes clicks on the playfield.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := PointerEvent(msg, m.screen.Width(), m.screen.Height())
	if ok {
		m.dispatch(ev)
	}
	return m, nil
}

// handleResize processes window resize events. The field is scaled to the
// new size, so the round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// handleTick releases expired keys and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, code := range m.holds.Tick() {
		m.dispatch(input.RawEvent{Kind: input.EventKeyUp, Code: code})
	}

	result := m.game.Step()
	m.perform(result.Effects)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatch routes a raw event through the attached listener set and applies
// the resulting intent.
func (m *Model) dispatch(ev input.RawEvent) {
	intent := input.Map(m.listeners, ev, m.inputContext())
	if intent == core.IntentNone {
		return
	}

	m.opts.Logger.Debug("intent", "game", m.game.ID(), "intent", intent, "listeners", m.listeners)

	m.perform(m.game.Apply(intent))
	m.gameState = m.game.State()
	if !m.gameState.GameOver {
		m.runSaved = false
	}
}

// perform carries out effects handed back by the game.
func (m *Model) perform(effects []core.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case core.EffectPlaySound:
			m.opts.Audio.Play(e.Sound)
		case core.EffectSubscribe:
			m.listeners = e.Listeners
			if e.Listeners == core.ListenersReset {
				// Keys still held from play must not reach the replay listeners.
				m.holds.ReleaseAll()
			}
		case core.EffectUnsubscribe:
			if m.listeners == e.Listeners {
				m.listeners = core.ListenersNone
			}
		}
	}
}

func (m *Model) inputContext() input.Context {
	return input.Context{
		Field:     m.game.Field(),
		PaddleY:   m.game.Paddle().Y,
		Direction: m.game.Round().PaddleDirection,
	}
}

// saveRun stores the finished round. Storage is best-effort: failures are
// logged and the game continues.
func (m *Model) saveRun() {
	stats := m.game.Stats()
	m.best = max(m.best, stats.BlocksDestroyed)

	if m.opts.Store == nil {
		return
	}

	outcome := storage.OutcomeLoss
	if m.game.Outcome() == arkanoid.OutcomeWin {
		outcome = storage.OutcomeWin
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		GameID:        m.game.ID(),
		Outcome:       outcome,
		Score:         stats.BlocksDestroyed,
		Ticks:         stats.Ticks,
		PaddleBounces: stats.PaddleBounces,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}

	m.lastRunID = id
	m.opts.Logger.Info("run saved",
		"run", id,
		"game", m.game.ID(),
		"outcome", outcome,
		"blocks", stats.BlocksDestroyed,
		"ticks", stats.Ticks,
	)
}

func (m *Model) loadBest() int {
	if m.opts.Store == nil {
		return 0
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.opts.Logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + RenderStatus(m.status(), m.screen.Width())
}

func (m Model) status() StatusInfo {
	return StatusInfo{
		Title:     m.game.Title(),
		Destroyed: m.gameState.Score,
		Total:     m.game.Config().Blocks.Count,
		Best:      m.best,
		Outcome:   m.game.Outcome(),
		Phase:     m.game.Round().Phase(),
		RunID:     m.lastRunID,
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Listeners returns the listener set currently attached.
func (m Model) Listeners() core.ListenerSet {
	return m.listeners
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// GameState returns the state reported by the last update.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game. Returns true if the
// player asked to go back to the menu rather than quit.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks steer, launch and replay
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
