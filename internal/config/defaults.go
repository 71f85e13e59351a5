package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

// DefaultConfig returns the default configuration: the classic five-letter,
// six-guess game with strict dictionary checking and the bundled lists.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			WordLength: 5,
			MaxGuesses: 6,
			Strict:     true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for printing a config
// template the player can copy and edit.
func DefaultYAML() []byte {
	return defaultWordleYAML
}
