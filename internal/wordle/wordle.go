// Package wordle implements the word-guessing game core: scoring guesses
// against a secret word and tracking one round from the first guess to a
// solved or failed end. It does no I/O; input and rendering belong to the
// platform layer.
package wordle

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Settings configures a single round.
type Settings struct {
	WordLength int      // Letters per word
	MaxGuesses int      // Guess budget before the round fails
	Words      []string // Pool the secret word is drawn from
	Allowed    []string // Extra words accepted as guesses, on top of the pool
	Strict     bool     // Reject guesses that are not in the word list
	SetWord    string   // Fixed secret word, overriding the random pick
	Seed       int64    // Seed for the random secret pick
}

// DefaultSettings returns the classic game shape: five letters, six
// guesses, strict dictionary checking. The word pool is left for the
// caller to fill in.
func DefaultSettings() Settings {
	return Settings{
		WordLength: 5,
		MaxGuesses: 6,
		Strict:     true,
	}
}

// Game is one round of the guessing game. It owns the secret word, the
// set of accepted guesses and the history of classified guesses. Create
// it with New, feed it player input through Submit; every other method
// is a side-effect-free query.
type Game struct {
	wordLength int
	maxGuesses int
	strict     bool
	secret     string
	accepted   map[string]struct{}
	guesses    [][]Letter
	solved     bool
}

// New creates a round from the given settings. Every word in the pool and
// the allowed list must match the configured length; the secret is either
// the configured SetWord or a seeded random pick from the pool. The secret
// itself is always an accepted guess.
func New(settings Settings) (*Game, error) {
	if settings.WordLength <= 0 {
		return nil, fmt.Errorf("wordle: word length must be positive, got %d", settings.WordLength)
	}
	if settings.MaxGuesses <= 0 {
		return nil, fmt.Errorf("wordle: max guesses must be positive, got %d", settings.MaxGuesses)
	}
	if len(settings.Words) == 0 {
		return nil, fmt.Errorf("wordle: word pool is empty")
	}

	accepted := make(map[string]struct{}, len(settings.Words)+len(settings.Allowed))
	pool := make([]string, 0, len(settings.Words))
	for _, w := range settings.Words {
		w = normalize(w)
		if utf8.RuneCountInString(w) != settings.WordLength {
			return nil, fmt.Errorf("wordle: pool word %q is not %d characters long", w, settings.WordLength)
		}
		pool = append(pool, w)
		accepted[w] = struct{}{}
	}
	for _, w := range settings.Allowed {
		w = normalize(w)
		if utf8.RuneCountInString(w) != settings.WordLength {
			return nil, fmt.Errorf("wordle: allowed word %q is not %d characters long", w, settings.WordLength)
		}
		accepted[w] = struct{}{}
	}

	secret := normalize(settings.SetWord)
	if secret == "" {
		rng := rand.New(rand.NewSource(settings.Seed))
		secret = pool[rng.Intn(len(pool))]
	} else if utf8.RuneCountInString(secret) != settings.WordLength {
		return nil, fmt.Errorf("wordle: set word %q is not %d characters long", secret, settings.WordLength)
	}
	accepted[secret] = struct{}{}

	return &Game{
		wordLength: settings.WordLength,
		maxGuesses: settings.MaxGuesses,
		strict:     settings.Strict,
		secret:     secret,
		accepted:   accepted,
		guesses:    make([][]Letter, 0, settings.MaxGuesses),
	}, nil
}

// Submit plays one turn. The raw guess is trimmed and lowercased, then
// validated: a guess of the wrong length is rejected without consuming a
// turn, a guess after the round has ended is rejected with
// NoGuessesLeftError, and in strict mode a guess missing from the word
// list is rejected without consuming a turn. A valid guess is scored
// against the secret and appended to the history.
func (g *Game) Submit(raw string) ([]Letter, error) {
	guess := normalize(raw)

	if utf8.RuneCountInString(guess) != g.wordLength {
		return nil, &WrongLengthError{Expected: g.wordLength}
	}
	if g.Over() {
		return nil, &NoGuessesLeftError{Word: g.secret}
	}
	if g.strict {
		if _, ok := g.accepted[guess]; !ok {
			return nil, &NotAWordError{Word: guess}
		}
	}

	scored := Score(g.secret, guess)
	g.guesses = append(g.guesses, scored)
	if guess == g.secret {
		g.solved = true
	}
	return scored, nil
}

// WordLength returns the configured word length.
func (g *Game) WordLength() int { return g.wordLength }

// MaxGuesses returns the guess budget.
func (g *Game) MaxGuesses() int { return g.maxGuesses }

// GuessCount returns the number of guesses consumed so far.
func (g *Game) GuessCount() int { return len(g.guesses) }

// Word returns the secret word.
func (g *Game) Word() string { return g.secret }

// Solved reports whether the secret word has been guessed.
func (g *Game) Solved() bool { return g.solved }

// Failed reports whether the guess budget is exhausted without a win. It
// is derived from the history rather than stored, so it cannot drift out
// of sync with the guess count.
func (g *Game) Failed() bool {
	return !g.solved && len(g.guesses) >= g.maxGuesses
}

// Over reports whether the round has reached a terminal state.
func (g *Game) Over() bool { return g.solved || g.Failed() }

// Guesses returns a copy of the classified guess history, oldest first.
func (g *Game) Guesses() [][]Letter {
	out := make([][]Letter, len(g.guesses))
	for i, row := range g.guesses {
		out[i] = append([]Letter(nil), row...)
	}
	return out
}

// Cell returns the classified letter at the given row and column of the
// guess grid. ok is false for cells that have not been played yet.
func (g *Game) Cell(row, col int) (Letter, bool) {
	if row < 0 || row >= len(g.guesses) {
		return Letter{}, false
	}
	if col < 0 || col >= len(g.guesses[row]) {
		return Letter{}, false
	}
	return g.guesses[row][col], true
}

// LetterStates returns the best classification seen so far for every
// letter guessed this round, Correct over Present over Wrong. Display
// layers use it to color their keyboard hints.
func (g *Game) LetterStates() map[rune]Occurrence {
	states := make(map[rune]Occurrence)
	for _, row := range g.guesses {
		for _, l := range row {
			if cur, ok := states[l.Rune]; !ok || l.Occurrence > cur {
				states[l.Rune] = l.Occurrence
			}
		}
	}
	return states
}

// normalize trims surrounding whitespace and lowercases a word.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
