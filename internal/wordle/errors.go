package wordle

import "fmt"

// WrongLengthError reports a guess whose rune length does not match the
// configured word length. The guess is discarded and no turn is consumed.
type WrongLengthError struct {
	Expected int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("your guess should be %d characters long", e.Expected)
}

// NotAWordError reports a guess that is not in the word list. It is only
// returned in strict mode; the guess is discarded and no turn is consumed.
type NotAWordError struct {
	Word string
}

func (e *NotAWordError) Error() string {
	return fmt.Sprintf("%q is not a valid word", e.Word)
}

// NoGuessesLeftError reports a guess submitted after the round has already
// ended, either solved or with the guess budget exhausted. It carries the
// secret word for the end-of-round reveal.
type NoGuessesLeftError struct {
	Word string
}

func (e *NoGuessesLeftError) Error() string {
	return fmt.Sprintf("you have no guesses left, the word was %q", e.Word)
}
