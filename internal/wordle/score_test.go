package wordle

import "testing"

func TestScoreExactMatch(t *testing.T) {
	for _, word := range []string{"rises", "crabs", "clone", "crêpe"} {
		scored := Score(word, word)
		runes := []rune(word)
		if len(scored) != len(runes) {
			t.Fatalf("Expected %d letters for %q, got %d", len(runes), word, len(scored))
		}
		for i, l := range scored {
			if l.Occurrence != Correct {
				t.Errorf("Expected position %d of %q to be correct, got %v", i, word, l.Occurrence)
			}
			if l.Rune != runes[i] {
				t.Errorf("Expected rune %q at position %d, got %q", runes[i], i, l.Rune)
			}
		}
	}
}

func TestScoreDisjointLetters(t *testing.T) {
	scored := Score("abcde", "fghij")
	for i, l := range scored {
		if l.Occurrence != Wrong {
			t.Errorf("Expected position %d to be wrong, got %v", i, l.Occurrence)
		}
	}
}

func TestScoreDuplicateHandling(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   []Occurrence
	}{
		{
			name:   "misplaced and exact letters mixed",
			secret: "rises",
			guess:  "sibel",
			want:   []Occurrence{Present, Correct, Wrong, Correct, Wrong},
		},
		{
			name:   "exact matches claim their letters first",
			secret: "rises",
			guess:  "sises",
			want:   []Occurrence{Wrong, Correct, Correct, Correct, Correct},
		},
		{
			name:   "leftmost duplicate claims the misplaced letter",
			secret: "crabs",
			guess:  "sassy",
			want:   []Occurrence{Present, Present, Wrong, Wrong, Wrong},
		},
		{
			name:   "duplicates beyond the secret count are wrong",
			secret: "clone",
			guess:  "llama",
			want:   []Occurrence{Wrong, Correct, Wrong, Wrong, Wrong},
		},
		{
			name:   "triple letter against a double",
			secret: "geese",
			guess:  "eeeee",
			want:   []Occurrence{Wrong, Correct, Correct, Wrong, Correct},
		},
		{
			name:   "double letter split across correct and present",
			secret: "abbey",
			guess:  "babes",
			want:   []Occurrence{Present, Present, Correct, Correct, Wrong},
		},
		{
			name:   "every secret letter claimed exactly once",
			secret: "abbey",
			guess:  "kebab",
			want:   []Occurrence{Wrong, Present, Correct, Present, Present},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := Score(tt.secret, tt.guess)
			if len(scored) != len(tt.want) {
				t.Fatalf("Expected %d letters, got %d", len(tt.want), len(scored))
			}
			for i, l := range scored {
				if l.Occurrence != tt.want[i] {
					t.Errorf("Score(%q, %q)[%d] = %v, want %v",
						tt.secret, tt.guess, i, l.Occurrence, tt.want[i])
				}
			}
		})
	}
}

func TestScoreKeepsGuessRunes(t *testing.T) {
	scored := Score("rises", "sibel")
	for i, r := range "sibel" {
		if scored[i].Rune != r {
			t.Errorf("Expected rune %q at position %d, got %q", r, i, scored[i].Rune)
		}
	}
}

func TestOccurrenceString(t *testing.T) {
	tests := []struct {
		occ  Occurrence
		want string
	}{
		{Wrong, "wrong"},
		{Present, "present"},
		{Correct, "correct"},
		{Occurrence(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.occ.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
