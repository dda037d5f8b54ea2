package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Most blocks destroyed in a single run
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Items follow the order of the
// difficulty presets; presets that are not registered are skipped.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) MenuModel {
	items := make([]MenuItem, 0, len(config.Presets))

	for _, preset := range config.Presets {
		id := arkanoid.GameID(preset)
		info, ok := registry.Lookup(id)
		if !ok {
			continue
		}

		item := MenuItem{
			GameID:      id,
			Title:       info.Title,
			Description: presetDescription(preset),
		}

		if store != nil {
			best, err := store.HighScore(id)
			if err != nil && logger != nil {
				logger.Warn("could not load high score", "game", id, "error", err)
			}
			item.Best = best
		}

		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// presetDescription summarizes what a difficulty changes.
func presetDescription(preset config.DifficultyPreset) string {
	cfg := config.DefaultArkanoidConfig()
	config.ApplyPreset(&cfg, preset)
	return fmt.Sprintf("ball and paddle speed %g", cfg.Speed())
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
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
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.center(theme.MenuTitle.Render("  A R K A N O I D  ")))
	b.WriteString("\n\n")
	b.WriteString(m.center(theme.MenuDescription.Render("Select a difficulty")))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := theme.MenuItemNormal
		if i == m.cursor {
			line = "> " + item.Title
			style = theme.MenuItemActive
		}
		if item.Best > 0 {
			line += fmt.Sprintf("  best %d", item.Best)
		}
		b.WriteString(m.center(style.Render(line)))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.center(theme.MenuDescription.Render(m.items[m.cursor].Description)))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(m.center(theme.HUDControls.Render(controls)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (MenuResult, error) {
	model := NewMenuModel(store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
