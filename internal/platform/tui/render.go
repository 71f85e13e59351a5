package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fluunke/wordle/internal/wordle"
)

// occurrenceStyles maps letter classifications to their display styles:
// green for correct, yellow for present, gray for wrong.
var occurrenceStyles = map[wordle.Occurrence]lipgloss.Style{
	wordle.Correct: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	wordle.Present: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	wordle.Wrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))

	unusedKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
)

// keyboardRows lays out the letter hint in qwerty order.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// RenderGrid draws the guess grid: one row per available guess, played
// cells colored by classification, unplayed cells blank.
func RenderGrid(g *wordle.Game) string {
	var sb strings.Builder
	for row := 0; row < g.MaxGuesses(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < g.WordLength(); col++ {
			cell, ok := g.Cell(row, col)
			if !ok {
				sb.WriteString(subtleStyle.Render("[ ]"))
				continue
			}
			style := occurrenceStyles[cell.Occurrence]
			sb.WriteString("[" + style.Render(string(cell.Rune)) + "]")
		}
	}
	return sb.String()
}

// RenderKeyboard draws the letter hint: the alphabet in qwerty rows, each
// letter colored by the best classification it has received this round.
func RenderKeyboard(g *wordle.Game) string {
	states := g.LetterStates()

	var sb strings.Builder
	for i, row := range keyboardRows {
		if i > 0 {
			sb.WriteRune('\n')
			// Stagger rows like a physical keyboard
			sb.WriteString(strings.Repeat(" ", i))
		}
		for j, r := range row {
			if j > 0 {
				sb.WriteRune(' ')
			}
			if occ, ok := states[r]; ok {
				sb.WriteString(occurrenceStyles[occ].Render(string(r)))
			} else {
				sb.WriteString(unusedKeyStyle.Render(string(r)))
			}
		}
	}
	return sb.String()
}

// centerText centers a single line within the given width. Width is
// measured on the printable text, so styled lines center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}
