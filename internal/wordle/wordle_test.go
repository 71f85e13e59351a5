package wordle

import (
	"errors"
	"testing"
)

func testWords() []string {
	return []string{"rises", "sises", "crabs", "clone"}
}

func newTestGame(t *testing.T, secret string, maxGuesses int) *Game {
	t.Helper()
	g, err := New(Settings{
		WordLength: 5,
		MaxGuesses: maxGuesses,
		Words:      testWords(),
		Strict:     true,
		SetWord:    secret,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"zero word length", Settings{WordLength: 0, MaxGuesses: 6, Words: testWords()}},
		{"zero max guesses", Settings{WordLength: 5, MaxGuesses: 0, Words: testWords()}},
		{"empty pool", Settings{WordLength: 5, MaxGuesses: 6}},
		{"pool word too short", Settings{WordLength: 5, MaxGuesses: 6, Words: []string{"crab"}}},
		{"allowed word too long", Settings{WordLength: 5, MaxGuesses: 6, Words: testWords(), Allowed: []string{"crabby"}}},
		{"set word wrong length", Settings{WordLength: 5, MaxGuesses: 6, Words: testWords(), SetWord: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.settings); err == nil {
				t.Error("Expected construction error, got nil")
			}
		})
	}
}

func TestSecretComesFromPool(t *testing.T) {
	pool := map[string]bool{}
	for _, w := range testWords() {
		pool[w] = true
	}
	for seed := int64(0); seed < 25; seed++ {
		g, err := New(Settings{
			WordLength: 5,
			MaxGuesses: 6,
			Words:      testWords(),
			Seed:       seed,
		})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		if !pool[g.Word()] {
			t.Fatalf("Secret %q is not in the pool", g.Word())
		}
	}
}

func TestSecretPickIsDeterministic(t *testing.T) {
	first, err := New(Settings{WordLength: 5, MaxGuesses: 6, Words: testWords(), Seed: 7})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	second, err := New(Settings{WordLength: 5, MaxGuesses: 6, Words: testWords(), Seed: 7})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if first.Word() != second.Word() {
		t.Errorf("Expected the same secret for the same seed, got %q and %q", first.Word(), second.Word())
	}
}

func TestWinningGuess(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	scored, err := g.Submit("rises")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	for i, l := range scored {
		if l.Occurrence != Correct {
			t.Errorf("Expected position %d to be correct, got %v", i, l.Occurrence)
		}
	}
	if !g.Solved() {
		t.Error("Expected game to be solved")
	}
	if g.Failed() {
		t.Error("Solved game must not be failed")
	}
	if !g.Over() {
		t.Error("Expected game to be over")
	}
	if g.GuessCount() != 1 {
		t.Errorf("Expected 1 guess, got %d", g.GuessCount())
	}
}

func TestGuessNormalization(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, err := g.Submit("  RiSeS \n"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !g.Solved() {
		t.Error("Expected trimmed, lowercased guess to win")
	}
}

func TestWrongLengthConsumesNoTurn(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	_, err := g.Submit("abc")
	var wrongLen *WrongLengthError
	if !errors.As(err, &wrongLen) {
		t.Fatalf("Expected WrongLengthError, got %v", err)
	}
	if wrongLen.Expected != 5 {
		t.Errorf("Expected length 5 in error, got %d", wrongLen.Expected)
	}
	if g.GuessCount() != 0 {
		t.Errorf("Expected no turn consumed, got %d", g.GuessCount())
	}
}

func TestUnknownWordRejectedWhenStrict(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	_, err := g.Submit("fishy")
	var notAWord *NotAWordError
	if !errors.As(err, &notAWord) {
		t.Fatalf("Expected NotAWordError, got %v", err)
	}
	if notAWord.Word != "fishy" {
		t.Errorf("Expected rejected word %q, got %q", "fishy", notAWord.Word)
	}
	if g.GuessCount() != 0 {
		t.Errorf("Expected no turn consumed, got %d", g.GuessCount())
	}
}

func TestAnyWordAcceptedWhenPermissive(t *testing.T) {
	g, err := New(Settings{
		WordLength: 5,
		MaxGuesses: 6,
		Words:      testWords(),
		Strict:     false,
		SetWord:    "rises",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := g.Submit("fishy"); err != nil {
		t.Fatalf("Expected permissive mode to accept any word, got %v", err)
	}
	if g.GuessCount() != 1 {
		t.Errorf("Expected 1 guess, got %d", g.GuessCount())
	}
	if _, err := g.Submit("abc"); err == nil {
		t.Error("Expected wrong-length guess to be rejected even in permissive mode")
	}
}

func TestAllowedWordsAreGuessable(t *testing.T) {
	g, err := New(Settings{
		WordLength: 5,
		MaxGuesses: 6,
		Words:      testWords(),
		Allowed:    []string{"slate"},
		Strict:     true,
		SetWord:    "rises",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := g.Submit("slate"); err != nil {
		t.Fatalf("Expected allowed word to be accepted, got %v", err)
	}
}

func TestSecretIsAlwaysGuessable(t *testing.T) {
	g, err := New(Settings{
		WordLength: 5,
		MaxGuesses: 6,
		Words:      testWords(),
		Strict:     true,
		SetWord:    "fishy",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := g.Submit("fishy"); err != nil {
		t.Fatalf("Expected the secret itself to be accepted, got %v", err)
	}
	if !g.Solved() {
		t.Error("Expected game to be solved")
	}
}

func TestRunningOutOfGuesses(t *testing.T) {
	g := newTestGame(t, "rises", 3)

	for _, w := range []string{"sises", "crabs", "clone"} {
		if _, err := g.Submit(w); err != nil {
			t.Fatalf("Submit(%q) failed: %v", w, err)
		}
	}
	if g.Solved() {
		t.Error("Expected game not to be solved")
	}
	if !g.Failed() {
		t.Error("Expected game to be failed")
	}
	if !g.Over() {
		t.Error("Expected game to be over")
	}
	if g.GuessCount() != 3 {
		t.Errorf("Expected 3 guesses, got %d", g.GuessCount())
	}
}

func TestSubmitAfterFailure(t *testing.T) {
	g := newTestGame(t, "rises", 1)

	if _, err := g.Submit("crabs"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	_, err := g.Submit("rises")
	var noGuesses *NoGuessesLeftError
	if !errors.As(err, &noGuesses) {
		t.Fatalf("Expected NoGuessesLeftError, got %v", err)
	}
	if noGuesses.Word != "rises" {
		t.Errorf("Expected revealed word %q, got %q", "rises", noGuesses.Word)
	}
	if g.GuessCount() != 1 {
		t.Errorf("Expected history unchanged, got %d guesses", g.GuessCount())
	}
	if g.Solved() {
		t.Error("A rejected guess must not solve the game")
	}
}

func TestSubmitAfterWin(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, err := g.Submit("rises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	_, err := g.Submit("crabs")
	var noGuesses *NoGuessesLeftError
	if !errors.As(err, &noGuesses) {
		t.Fatalf("Expected NoGuessesLeftError, got %v", err)
	}
	if g.GuessCount() != 1 {
		t.Errorf("Expected history unchanged, got %d guesses", g.GuessCount())
	}
}

func TestRejectedGuessLeavesStateUntouched(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, err := g.Submit("sises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	before := g.GuessCount()

	//nolint:errcheck // Both submissions are meant to fail.
	g.Submit("xx")
	//nolint:errcheck
	g.Submit("fishy")

	if g.GuessCount() != before {
		t.Errorf("Expected %d guesses after rejected submissions, got %d", before, g.GuessCount())
	}
	if g.Over() {
		t.Error("Expected game to still be running")
	}
}

func TestGuessesReturnsCopy(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, err := g.Submit("sises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	history := g.Guesses()
	history[0][0] = Letter{Rune: 'z', Occurrence: Correct}

	cell, ok := g.Cell(0, 0)
	if !ok {
		t.Fatal("Expected cell (0,0) to be played")
	}
	if cell.Rune != 's' || cell.Occurrence != Wrong {
		t.Errorf("Expected internal history untouched, got %q/%v", cell.Rune, cell.Occurrence)
	}
}

func TestCellBounds(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, ok := g.Cell(0, 0); ok {
		t.Error("Expected no cell before the first guess")
	}

	if _, err := g.Submit("sises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if _, ok := g.Cell(0, 4); !ok {
		t.Error("Expected cell (0,4) to be played")
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {0, 5}, {1, 0}, {6, 0}} {
		if _, ok := g.Cell(rc[0], rc[1]); ok {
			t.Errorf("Expected no cell at (%d,%d)", rc[0], rc[1])
		}
	}
}

func TestLetterStatesKeepBestClassification(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	// "sibel" marks s present; "sises" then upgrades it to correct.
	if _, err := g.Submit("sibel"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	states := g.LetterStates()
	if states['s'] != Present {
		t.Errorf("Expected s to be present, got %v", states['s'])
	}
	if states['i'] != Correct {
		t.Errorf("Expected i to be correct, got %v", states['i'])
	}
	if states['b'] != Wrong {
		t.Errorf("Expected b to be wrong, got %v", states['b'])
	}

	if _, err := g.Submit("sises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	states = g.LetterStates()
	if states['s'] != Correct {
		t.Errorf("Expected s upgraded to correct, got %v", states['s'])
	}
	if states['e'] != Correct {
		t.Errorf("Expected e to stay correct, got %v", states['e'])
	}
	if _, ok := states['z']; ok {
		t.Error("Expected unguessed letters to be absent")
	}
}

func TestQueriesAreStable(t *testing.T) {
	g := newTestGame(t, "rises", 6)

	if _, err := g.Submit("sises"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if g.GuessCount() != 1 {
			t.Fatalf("Expected GuessCount to stay 1, got %d", g.GuessCount())
		}
		if g.Solved() || g.Failed() || g.Over() {
			t.Fatal("Expected game to still be running")
		}
		if g.Word() != "rises" {
			t.Fatalf("Expected secret %q, got %q", "rises", g.Word())
		}
		if g.WordLength() != 5 || g.MaxGuesses() != 6 {
			t.Fatal("Expected settings queries to be constant")
		}
	}
}

func TestPoolWordsAreNormalized(t *testing.T) {
	g, err := New(Settings{
		WordLength: 5,
		MaxGuesses: 6,
		Words:      []string{" RISES ", "Crabs"},
		Strict:     true,
		SetWord:    "CRABS",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if g.Word() != "crabs" {
		t.Errorf("Expected normalized secret %q, got %q", "crabs", g.Word())
	}
	if _, err := g.Submit("rises"); err != nil {
		t.Fatalf("Expected normalized pool word to be accepted, got %v", err)
	}
}
