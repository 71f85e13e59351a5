package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fluunke/wordle/internal/storage"
)

// Stats screen layout constants
const (
	maxResults   = 100 // Max results to load into the table
	maxBarWidth  = 20  // Widest distribution bar
	minTableRows = 3
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	store     *storage.Store
	stats     *storage.Stats
	results   []storage.Result
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a new statistics model.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.loadData()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// loadData fetches the aggregates and recent rounds.
func (m *StatsModel) loadData() {
	if m.store == nil {
		return
	}
	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}
	if results, err := m.store.RecentResults(maxResults); err == nil {
		m.results = results
	}
}

// createTable creates the recent rounds table.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Mode", Width: 8},
		{Title: "Word", Width: 10},
		{Title: "Guesses", Width: 8},
		{Title: "Result", Width: 8},
	}

	rows := m.height - 12 - len(m.distributionLines())
	if rows < minTableRows {
		rows = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	// Table styles
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

// updateTableRows fills the table with the recent rounds.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		result := "lost"
		if r.Solved {
			result = "won"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Mode,
			r.Word,
			fmt.Sprintf("%d", r.Guesses),
			result,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(" S T A T I S T I C S "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	if lines := m.distributionLines(); len(lines) > 0 {
		b.WriteString(centerBlock(strings.Join(lines, "\n"), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerBlock(m.renderTableContent(), m.width))

	// Help bar
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// summaryLine renders the headline aggregates.
func (m StatsModel) summaryLine() string {
	if m.stats == nil || m.stats.Played == 0 {
		return subtleStyle.Render("No rounds recorded yet")
	}
	return fmt.Sprintf("Played: %d  |  Won: %d (%.0f%%)  |  Streak: %d  |  Best: %d",
		m.stats.Played,
		m.stats.Won,
		m.stats.WinRate()*100,
		m.stats.CurrentStreak,
		m.stats.MaxStreak,
	)
}

// distributionLines renders one bar per winning guess count.
func (m StatsModel) distributionLines() []string {
	if m.stats == nil || len(m.stats.Distribution) == 0 {
		return nil
	}

	buckets := make([]int, 0, len(m.stats.Distribution))
	maxCount := 0
	for guesses, count := range m.stats.Distribution {
		buckets = append(buckets, guesses)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Ints(buckets)

	lines := make([]string, 0, len(buckets))
	for _, guesses := range buckets {
		count := m.stats.Distribution[guesses]
		barWidth := count * maxBarWidth / maxCount
		if barWidth < 1 {
			barWidth = 1
		}
		bar := winStyle.Render(strings.Repeat("█", barWidth))
		lines = append(lines, fmt.Sprintf("%d %s %d", guesses, bar, count))
	}
	return lines
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a round to start your history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
