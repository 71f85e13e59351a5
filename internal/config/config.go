// Package config provides YAML-based game configuration loading and
// difficulty presets for the wordle terminal game.
package config

// Config contains all configuration for a game session.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Words WordsConfig `yaml:"words"`
}

// GameConfig defines the shape of a round.
type GameConfig struct {
	WordLength int  `yaml:"word_length"` // Letters per word
	MaxGuesses int  `yaml:"max_guesses"` // Guess budget before the round fails
	Strict     bool `yaml:"strict"`      // Reject guesses missing from the word list
}

// WordsConfig points at optional custom word list files. Empty paths fall
// back to the bundled lists.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}
