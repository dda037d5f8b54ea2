package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

const (
	maxBoardRuns    = 100 // Runs loaded per difficulty
	nominalTickRate = 60  // Ticks per second used to show run length
	boardChrome     = 9   // Rows taken by title, tabs, borders and help
)

// ScoreboardKeyMap defines the key bindings for the results board.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "harder")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "easier")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each difficulty, one tab per
// difficulty.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	runs      []storage.Run
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a results board showing the first difficulty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	games := make([]registry.GameInfo, 0, len(config.Presets))
	for _, preset := range config.Presets {
		if info, ok := registry.Lookup(arkanoid.GameID(preset)); ok {
			games = append(games, info)
		}
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newRunsTable(width, height)
	m.load()
	return m
}

// newRunsTable builds an empty table sized for the terminal.
func newRunsTable(width, height int) table.Model {
	dateWidth := 14
	if width > 60 {
		dateWidth = min(width-46, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Blocks", Width: 8},
			{Title: "Result", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the runs of the current difficulty into the table.
func (m *ScoreboardModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil && len(m.games) > 0 {
		m.runs, m.loadErr = m.store.TopRuns(m.games[m.current].ID, maxBoardRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// runRow formats a stored run as a table row.
func runRow(rank int, r storage.Run) table.Row {
	result := "lost"
	if r.Outcome == storage.OutcomeWin {
		result = "won"
	}
	return table.Row{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", r.Score),
		result,
		formatTicks(r.Ticks),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// formatTicks renders a tick count as wall time at the nominal tick rate.
func formatTicks(ticks int) string {
	d := time.Duration(ticks) * time.Second / nominalTickRate
	return d.Round(100 * time.Millisecond).String()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTo(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTo(m.current - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunsTable(m.width, m.height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// switchTo selects difficulty i, wrapping around.
func (m *ScoreboardModel) switchTo(i int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (i + len(m.games)) % len(m.games)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, theme.MenuTitle.Render("BEST RUNS")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderTabs()))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.renderBody()))
	b.WriteString("\n")

	b.WriteString(theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	theme := GetTheme()
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = theme.MenuItemActive.Render("[" + g.Title + "]")
		} else {
			tabs[i] = theme.MenuItemNormal.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderBody() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return empty.Render("Results are unavailable: no database.")
	case m.loadErr != nil:
		return empty.Render("Could not load results: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nClear some blocks to set a high score!")
	}
	return m.table.View()
}

// Current returns the ID of the difficulty on screen.
func (m ScoreboardModel) Current() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// Runs returns the runs on screen.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the results board.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
