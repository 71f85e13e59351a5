package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluunke/wordle/internal/config"
	"github.com/fluunke/wordle/internal/platform/tui"
	"github.com/fluunke/wordle/internal/storage"
	"github.com/fluunke/wordle/internal/wordle"
)

var (
	flagDifficulty string
	flagLength     int
	flagGuesses    int
	flagPermissive bool
	flagWord       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round with a random word",
	Long: `Start a round with a randomly picked secret word.

Controls:
  Type       - Enter your guess
  Enter      - Submit the guess
  R          - New word (after the round ends)
  Esc        - Leave the round
  Ctrl+C     - Quit

Difficulty options:
  easy   - 8 guesses
  normal - 6 guesses
  hard   - 4 guesses

Examples:
  wordle play
  wordle play --difficulty hard
  wordle play --guesses 3
  wordle play --permissive
  wordle play --config ./my-wordle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Word length (default from config)")
	playCmd.Flags().IntVar(&flagGuesses, "guesses", 0, "Max guesses (default from config)")
	playCmd.Flags().BoolVar(&flagPermissive, "permissive", false, "Accept guesses that are not in the word list")
	playCmd.Flags().StringVar(&flagWord, "word", "", "Fixed secret word")
	//nolint:errcheck // Flag is registered right above
	playCmd.Flags().MarkHidden("word")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Apply difficulty preset before individual overrides
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if cmd.Flags().Changed("length") {
		cfg.Game.WordLength = flagLength
	}
	if cmd.Flags().Changed("guesses") {
		cfg.Game.MaxGuesses = flagGuesses
	}
	if flagPermissive {
		cfg.Game.Strict = false
	}

	answers, allowed, err := loadWordLists(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	opts := tui.GameOptions{
		Settings: wordle.Settings{
			WordLength: cfg.Game.WordLength,
			MaxGuesses: cfg.Game.MaxGuesses,
			Words:      answers,
			Allowed:    allowed,
			Strict:     cfg.Game.Strict,
			SetWord:    flagWord,
			Seed:       flagSeed,
		},
		Mode:   storage.ModeRandom,
		Width:  width,
		Height: height,
	}

	// Open result storage
	store := openStore()

	// Run the round
	out, runErr := tui.Run(opts, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printOutcome(out)
}
