package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluunke/wordle/internal/storage"
	"github.com/fluunke/wordle/internal/wordle"
)

// GameOptions configures one interactive round.
type GameOptions struct {
	Settings wordle.Settings
	Mode     string // storage.ModeRandom or storage.ModeDaily
	Day      string // Date key, set for daily rounds
	DailyNum int    // Daily puzzle number, shown in the header
	Width    int
	Height   int
}

// Outcome describes how a round ended, for printing a summary after the
// program has left the alternate screen.
type Outcome struct {
	Finished   bool // False if the player left mid-round
	Solved     bool
	Word       string
	Guesses    int
	MaxGuesses int
}

// GameModel is the Bubble Tea model for one round of the game.
type GameModel struct {
	game        *wordle.Game
	opts        GameOptions
	store       *storage.Store
	input       textinput.Model
	status      string // Validation message for the last rejected guess
	width       int
	height      int
	standalone  bool // Quit instead of returning to a menu
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for this round
}

// NewGameModel creates a new Bubble Tea model for one round.
func NewGameModel(opts GameOptions, store *storage.Store) (GameModel, error) {
	// Use time-based seed if not specified
	if opts.Settings.Seed == 0 {
		opts.Settings.Seed = time.Now().UnixNano()
	}

	game, err := wordle.New(opts.Settings)
	if err != nil {
		return GameModel{}, err
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = strings.Repeat("_", game.WordLength())
	ti.CharLimit = game.WordLength()
	ti.Width = game.WordLength() + 1
	ti.Focus()

	return GameModel{
		game:   game,
		opts:   opts,
		store:  store,
		input:  ti,
		width:  opts.Width,
		height: opts.Height,
	}, nil
}

// Init starts the cursor blink.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input. Letter keys belong to the guess
// input, so only control keys are intercepted here.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Over() {
		return m.handleEndKey(msg)
	}

	switch msg.String() {
	case "esc":
		return m.leave()
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEndKey processes keyboard input after the round has ended.
func (m GameModel) handleEndKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		// The daily word is fixed, only random rounds restart
		if m.opts.Mode == storage.ModeRandom {
			return m.restart()
		}
	case "b", "esc", "enter":
		return m.leave()
	}
	return m, nil
}

// leave exits the round: back to the menu inside a session, quit otherwise.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// submit plays the typed guess.
func (m GameModel) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	if _, err := m.game.Submit(raw); err != nil {
		// Rejected guesses consume no turn, show why and keep the input
		m.status = err.Error()
		return m, nil
	}

	m.status = ""
	m.input.Reset()

	if m.game.Over() {
		m.input.Blur()
		if !m.resultSaved && m.store != nil {
			//nolint:errcheck // Best-effort save, the round is already over
			m.store.SaveResult(storage.Result{
				Mode:    m.opts.Mode,
				Day:     m.opts.Day,
				Word:    m.game.Word(),
				Guesses: m.game.GuessCount(),
				Solved:  m.game.Solved(),
			})
		}
		m.resultSaved = true
	}

	return m, nil
}

// restart begins a fresh round with a new random word.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	settings := m.opts.Settings
	settings.SetWord = ""
	settings.Seed = time.Now().UnixNano()

	game, err := wordle.New(settings)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.game = game
	m.status = ""
	m.resultSaved = false
	m.input.Reset()
	cmd := m.input.Focus()
	return m, cmd
}

// View renders the round.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := " W O R D L E "
	if m.opts.Mode == storage.ModeDaily {
		title = fmt.Sprintf(" W O R D L E  -  Daily #%d ", m.opts.DailyNum)
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(RenderGrid(m.game), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(RenderKeyboard(m.game), m.width))
	b.WriteString("\n\n")

	if m.game.Over() {
		b.WriteString(centerText(m.endBanner(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(subtleStyle.Render(m.endControls()), m.width))
	} else {
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(centerText(statusStyle.Render(m.status), m.width))
		}
		b.WriteString("\n")
		escLabel := "Esc: Quit"
		if !m.standalone {
			escLabel = "Esc: Menu"
		}
		controls := "Enter: Guess  |  " + escLabel + "  |  Ctrl+C: Quit"
		b.WriteString(centerText(subtleStyle.Render(controls), m.width))
	}

	b.WriteString("\n")
	return b.String()
}

// endBanner renders the win or loss message.
func (m GameModel) endBanner() string {
	if m.game.Solved() {
		return winStyle.Render(
			fmt.Sprintf("You guessed the word in %d/%d!", m.game.GuessCount(), m.game.MaxGuesses()))
	}
	return loseStyle.Render(
		fmt.Sprintf("You have no guesses left, the word was %q", m.game.Word()))
}

// endControls renders the footer for a finished round.
func (m GameModel) endControls() string {
	var parts []string
	if m.opts.Mode == storage.ModeRandom {
		parts = append(parts, "R: New Word")
	}
	if !m.standalone {
		parts = append(parts, "B: Menu")
	}
	parts = append(parts, "Q: Quit")
	return strings.Join(parts, "  |  ")
}

// Outcome reports how the round ended.
func (m GameModel) Outcome() Outcome {
	return Outcome{
		Finished:   m.game.Over(),
		Solved:     m.game.Solved(),
		Word:       m.game.Word(),
		Guesses:    m.game.GuessCount(),
		MaxGuesses: m.game.MaxGuesses(),
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one round in the local terminal, blocking until the player
// finishes or leaves.
func Run(opts GameOptions, store *storage.Store) (Outcome, error) {
	model, err := NewGameModel(opts, store)
	if err != nil {
		return Outcome{}, err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return Outcome{}, nil
	}
	return m.Outcome(), nil
}
