package words

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestBundledListsAreWellFormed(t *testing.T) {
	answers := Answers()
	if len(answers) == 0 {
		t.Fatal("Expected a non-empty bundled answer pool")
	}
	allowed := Allowed()
	if len(allowed) == 0 {
		t.Fatal("Expected a non-empty bundled allowed list")
	}

	seen := make(map[string]bool, len(answers)+len(allowed))
	for _, w := range append(append([]string{}, answers...), allowed...) {
		if utf8.RuneCountInString(w) != 5 {
			t.Errorf("Expected 5-letter word, got %q", w)
		}
		if seen[w] {
			t.Errorf("Word %q appears twice across the bundled lists", w)
		}
		seen[w] = true
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	content := "# custom list\nRISES \n\n  sises\ncrabs\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write list: %v", err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := []string{"rises", "sises", "crabs"}
	if len(list) != len(want) {
		t.Fatalf("Expected %d words, got %d: %v", len(want), len(list), list)
	}
	for i, w := range want {
		if list[i] != w {
			t.Errorf("Expected word %q at index %d, got %q", w, i, list[i])
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# only comments\n\n"), 0o644); err != nil {
		t.Fatalf("Failed to write list: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected an error for a list with no words")
	}
}

func TestByLength(t *testing.T) {
	list := []string{"crab", "crabs", "crabby", "rises", "crêpe"}
	got := ByLength(list, 5)
	want := []string{"crabs", "rises", "crêpe"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d words, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Expected word %q at index %d, got %q", w, i, got[i])
		}
	}
	if n := len(ByLength(list, 9)); n != 0 {
		t.Errorf("Expected no 9-letter words, got %d", n)
	}
}
