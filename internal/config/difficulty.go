package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name from a flag or config value.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", name)
	}
}

// GuessesForPreset returns the guess budget for a difficulty preset.
func GuessesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return 6
	}
}

// ApplyPreset modifies the config based on a difficulty preset. Presets
// adjust the guess budget only; scoring stays the same on every level.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Game.MaxGuesses = GuessesForPreset(preset)
}
