// Package words supplies the word lists the game draws from: a bundled
// answer pool, a bundled list of additionally allowed guesses, and loading
// of caller-supplied list files.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

var (
	parseOnce sync.Once
	answers   []string
	allowed   []string
)

// Answers returns the bundled pool of secret words.
func Answers() []string {
	parseOnce.Do(parse)
	return answers
}

// Allowed returns the bundled extra guesses. It does not repeat the answer
// pool; the game accepts pool words as guesses on its own.
func Allowed() []string {
	parseOnce.Do(parse)
	return allowed
}

func parse() {
	// The embedded lists are well-formed, a strings.Reader cannot fail.
	answers, _ = parseLines(strings.NewReader(embeddedAnswers))
	allowed, _ = parseLines(strings.NewReader(embeddedAllowed))
}

// LoadFile reads a newline-delimited word list from disk. Words are
// trimmed and lowercased; blank lines and lines starting with '#' are
// skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open list: %w", err)
	}
	defer f.Close()

	list, err := parseLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read list %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("words: list %s contains no words", path)
	}
	return list, nil
}

func parseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// ByLength filters a list down to the words of exactly n runes.
func ByLength(list []string, n int) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if utf8.RuneCountInString(w) == n {
			out = append(out, w)
		}
	}
	return out
}
