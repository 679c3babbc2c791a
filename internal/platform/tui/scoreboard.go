package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

const (
	minWidthForSidebar = 90  // Below this the variant list collapses to "< title >"
	sidebarWidth       = 32  // Variant list incl. padding
	maxRuns            = 100 // Runs loaded per variant
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of each variant.
type ScoreboardModel struct {
	variants    []registry.VariantInfo
	cursor      int // Index into variants
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.GameStats // Nil when the store is missing or failed
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants:    registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// current returns the selected variant.
func (m ScoreboardModel) current() (registry.VariantInfo, bool) {
	if len(m.variants) == 0 {
		return registry.VariantInfo{}, false
	}
	return m.variants[m.cursor], true
}

// createTable sizes the run table to the space left beside the sidebar.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 6
	if m.showSidebar {
		avail -= sidebarWidth + 4
	}
	// Seed is the widest column, shown only when it fits.
	if avail >= 62 {
		columns = append(columns, table.Column{Title: "Seed", Width: 20})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Title, stats line, help
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

// load fetches runs and stats for the selected variant.
func (m *ScoreboardModel) load() {
	m.runs = nil
	m.stats = nil
	if v, ok := m.current(); ok && m.store != nil {
		if runs, err := m.store.TopRuns(v.ID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(v.ID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

// fillTable turns the loaded runs into table rows.
func (m *ScoreboardModel) fillTable() {
	withSeed := len(m.table.Columns()) > 5

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if withSeed {
			row = append(row, strconv.FormatInt(r.Seed, 10))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Up/down and paging scroll the table.
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST RUNS"
	if v, ok := m.current(); ok {
		title = "BEST RUNS - " + v.Title
	}
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.renderRuns())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", board))
	} else if v, ok := m.current(); ok {
		b.WriteString(centerText(fmt.Sprintf("< %s >", v.Title), m.width))
		b.WriteString("\n\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the variants with their best score.
func (m ScoreboardModel) renderSidebar() string {
	var list strings.Builder
	list.WriteString("Variants\n")
	list.WriteString(strings.Repeat("─", sidebarWidth-4))
	list.WriteString("\n")

	for i, v := range m.variants {
		line := "  " + v.Title
		if i == m.cursor {
			line = boardPickStyle.Render("> " + v.Title)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	return boardFrameStyle.Width(sidebarWidth).Render(list.String())
}

// renderRuns renders the run table, or a hint when there is nothing yet.
func (m ScoreboardModel) renderRuns() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nEat the pellets, grab the coin, dodge the ghosts!")
	}
	return m.table.View()
}

// statsLine summarizes the selected variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds: %d  Best: %d  Deepest level: %d  Average: %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.MaxLevel, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard as its own program.
// Returns true if the user went back to the menu, false if they quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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
