package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluunke/wordle/internal/config"
	"github.com/fluunke/wordle/internal/daily"
	"github.com/fluunke/wordle/internal/storage"
	"github.com/fluunke/wordle/internal/wordle"
)

// SessionOptions holds everything a menu driven session needs to start
// rounds: the game configuration, the word lists and the initial size.
type SessionOptions struct {
	Config  config.Config
	Answers []string
	Allowed []string

	// Seed for random rounds. Zero picks a time based seed per round.
	Seed int64

	Width  int
	Height int
}

// sessionScreen identifies which model currently owns the terminal.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenStats
)

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions and `wordle menu`.
type SessionModel struct {
	opts     SessionOptions
	store    *storage.Store
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	stats    *StatsModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts SessionOptions, store *storage.Store) SessionModel {
	return SessionModel{
		opts:  opts,
		store: store,
		menu:  NewMenuModel(opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so fresh screens start with it
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.updateGame(msg)
		}
	case screenStats:
		if m.stats != nil {
			return m.updateStats(msg)
		}
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the menu owns the terminal.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	choice := m.menu.Selected()
	if choice != MenuChoiceNone {
		m.menu.ClearSelection()
	}

	switch choice {
	case MenuChoiceRandom:
		return m.startGame(storage.ModeRandom)

	case MenuChoiceDaily:
		return m.startGame(storage.ModeDaily)

	case MenuChoiceStats:
		stats := NewStatsModel(m.store, m.opts.Width, m.opts.Height)
		m.stats = &stats
		m.screen = screenStats
		return m, m.stats.Init()
	}

	return m, cmd
}

// startGame builds a round for the given mode and hands over the screen.
// Problems (daily already played, bad settings) land in the menu status
// line instead of tearing the session down.
func (m SessionModel) startGame(mode string) (tea.Model, tea.Cmd) {
	opts := GameOptions{
		Settings: wordle.Settings{
			WordLength: m.opts.Config.Game.WordLength,
			MaxGuesses: m.opts.Config.Game.MaxGuesses,
			Words:      m.opts.Answers,
			Allowed:    m.opts.Allowed,
			Strict:     m.opts.Config.Game.Strict,
			Seed:       m.opts.Seed,
		},
		Mode:   mode,
		Width:  m.opts.Width,
		Height: m.opts.Height,
	}

	if mode == storage.ModeDaily {
		now := time.Now()
		day := daily.DateKey(now)

		if m.store != nil {
			if played, err := m.store.DailyPlayed(day); err == nil && played {
				m.menu.SetStatus("Today's word is done, come back tomorrow!")
				return m, nil
			}
		}

		if len(m.opts.Answers) == 0 {
			m.menu.SetStatus("no words available for the daily round")
			return m, nil
		}

		idx := daily.WordIndex(now, daily.DefaultSalt, len(m.opts.Answers))
		opts.Settings.SetWord = m.opts.Answers[idx]
		opts.Day = day
		opts.DailyNum = daily.Number(now)
	}

	game, err := NewGameModel(opts, m.store)
	if err != nil {
		m.menu.SetStatus(err.Error())
		return m, nil
	}

	m.game = &game
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates while a round owns the terminal.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.screen = screenMenu
		m.game = nil
		m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateStats handles updates while the statistics screen owns the terminal.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsModel); ok {
		m.stats = &statsModel
	}

	if m.stats.IsGoingBack() {
		m.screen = screenMenu
		m.stats = nil
		m.menu = NewMenuModel(m.opts.Width, m.opts.Height)
		return m, m.menu.Init()
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenStats:
		if m.stats != nil {
			return m.stats.View()
		}
	}
	return m.menu.View()
}

// RunSession runs the menu driven session in the local terminal.
func RunSession(opts SessionOptions, store *storage.Store) error {
	p := tea.NewProgram(NewSessionModel(opts, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
