package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluunke/wordle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an entry.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select entry
  Q            - Quit

Examples:
  wordle menu
  wordle menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	answers, allowed, err := loadWordLists(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	opts := tui.SessionOptions{
		Config:  cfg,
		Answers: answers,
		Allowed: allowed,
		Seed:    flagSeed,
		Width:   width,
		Height:  height,
	}

	// Open result storage
	store := openStore()

	runErr := tui.RunSession(opts, store)

	// Cleanup
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
