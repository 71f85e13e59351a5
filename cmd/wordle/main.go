// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle play              - Play a round with a random word
//	wordle daily             - Play today's word (one round per day)
//	wordle menu              - Start the interactive menu
//	wordle stats             - Show your statistics
//	wordle serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML file
//	--db <path>      - Set database path (default: ~/.wordle/results.db)
//	--seed <value>   - Set RNG seed for reproducible word picks
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fluunke/wordle/internal/config"
	"github.com/fluunke/wordle/internal/platform/tui"
	"github.com/fluunke/wordle/internal/storage"
	"github.com/fluunke/wordle/internal/words"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - Guess the word in your terminal",
	Long: `Wordle is a terminal word-guessing game. You have a handful of
guesses to find the secret word; every guess is scored letter by letter.

Available commands:
  play     - Play a round with a random word
  daily    - Play today's word, the same for everyone
  menu     - Interactive menu with games and statistics
  stats    - View your play statistics
  serve    - Start SSH server for remote play

Examples:
  wordle play
  wordle play --difficulty hard
  wordle daily
  wordle menu
  wordle serve --ssh :2222
  wordle stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordle/results.db", "Path to results database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the layered YAML config honoring --config.
func loadGameConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// loadWordLists resolves the answer and allowed lists for the configured
// word length, from the bundled lists or the files named in the config.
func loadWordLists(cfg config.Config) (answers, allowed []string, err error) {
	answers = words.Answers()
	if cfg.Words.AnswersFile != "" {
		if answers, err = words.LoadFile(cfg.Words.AnswersFile); err != nil {
			return nil, nil, err
		}
	}

	allowed = words.Allowed()
	if cfg.Words.AllowedFile != "" {
		if allowed, err = words.LoadFile(cfg.Words.AllowedFile); err != nil {
			return nil, nil, err
		}
	}

	answers = words.ByLength(answers, cfg.Game.WordLength)
	allowed = words.ByLength(allowed, cfg.Game.WordLength)
	if len(answers) == 0 {
		return nil, nil, fmt.Errorf("no %d-letter words in the answers list", cfg.Game.WordLength)
	}
	return answers, allowed, nil
}

// openStore opens the results database, or returns nil so the game can
// still run without saving anything.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the current terminal size, with sane defaults.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// printOutcome prints the round summary after the alt screen closes.
func printOutcome(out tui.Outcome) {
	if !out.Finished {
		return
	}
	if out.Solved {
		fmt.Printf("You guessed %q in %d/%d!\n", out.Word, out.Guesses, out.MaxGuesses)
	} else {
		fmt.Printf("Out of guesses, the word was %q.\n", out.Word)
	}
}
