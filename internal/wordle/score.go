package wordle

// Occurrence classifies one guessed letter against the secret word.
type Occurrence int

const (
	// Wrong means the letter is absent from the secret word, or every
	// occurrence of it has already been claimed by another position.
	Wrong Occurrence = iota
	// Present means the letter occurs in the secret word at a different,
	// still unclaimed position.
	Present
	// Correct means the letter matches the secret word at this position.
	Correct
)

// String returns a human-readable name for the occurrence.
func (o Occurrence) String() string {
	switch o {
	case Wrong:
		return "wrong"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Letter is one cell of a classified guess.
type Letter struct {
	Rune       rune
	Occurrence Occurrence
}

// Score classifies guess against secret, letter by letter.
//
// Two passes keep duplicate letters honest. The first pass claims exact
// matches and counts the secret letters left unclaimed. The second pass
// walks the remaining positions left to right: a letter with unclaimed
// occurrences left is Present and consumes one, anything else is Wrong.
// A letter guessed more often than the secret contains it is marked
// Present or Correct at most as many times as the secret can cover.
//
// Secret and guess must have the same rune length; Game validates that
// before scoring.
func Score(secret, guess string) []Letter {
	secretRunes := []rune(secret)
	guessRunes := []rune(guess)

	scored := make([]Letter, len(guessRunes))

	// Occurrences of each secret letter not claimed by an exact match.
	unclaimed := make(map[rune]int, len(secretRunes))

	for i, r := range guessRunes {
		if r == secretRunes[i] {
			scored[i] = Letter{Rune: r, Occurrence: Correct}
			continue
		}
		unclaimed[secretRunes[i]]++
	}

	for i, r := range guessRunes {
		if scored[i].Occurrence == Correct {
			continue
		}
		if unclaimed[r] > 0 {
			unclaimed[r]--
			scored[i] = Letter{Rune: r, Occurrence: Present}
			continue
		}
		scored[i] = Letter{Rune: r, Occurrence: Wrong}
	}

	return scored
}
