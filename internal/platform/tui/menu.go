package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice identifies an entry in the session menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceRandom
	MenuChoiceDaily
	MenuChoiceStats
	MenuChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	status    string // Message shown under the list, e.g. daily already played
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	items := []MenuItem{
		{Choice: MenuChoiceRandom, Title: "Random Word"},
		{Choice: MenuChoiceDaily, Title: "Daily Word"},
		{Choice: MenuChoiceStats, Title: "Statistics"},
		{Choice: MenuChoiceQuit, Title: "Quit"},
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
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
		m.status = ""

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.status = ""

	case MenuActionSelect:
		choice := m.items[m.cursor].Choice
		if choice == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(" W O R D L E "), m.width))
	b.WriteString("\n\n")

	// Subtitle
	b.WriteString(centerText("Guess the word", m.width))
	b.WriteString("\n\n")

	// Mode list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	// Status line, e.g. when today's daily is already done
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(subtleStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// ClearSelection resets the selection, keeping cursor position intact.
func (m *MenuModel) ClearSelection() {
	m.selected = MenuChoiceNone
}

// SetStatus puts a message under the mode list.
func (m *MenuModel) SetStatus(status string) {
	m.status = status
}
