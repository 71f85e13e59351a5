package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fluunke/wordle/internal/daily"
	"github.com/fluunke/wordle/internal/platform/tui"
	"github.com/fluunke/wordle/internal/storage"
	"github.com/fluunke/wordle/internal/wordle"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play today's word",
	Long: `Play the daily word. Everyone gets the same word on the same
date (UTC), and each word can be played once.

Examples:
  wordle daily
  wordle daily --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runDaily,
}

func runDaily(_ *cobra.Command, _ []string) {
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

	now := time.Now()
	day := daily.DateKey(now)
	num := daily.Number(now)

	// Open result storage
	store := openStore()

	// One round per day: show the earlier result instead of replaying
	if store != nil {
		if prev, prevErr := store.DailyResult(day); prevErr == nil && prev != nil {
			store.Close()
			if prev.Solved {
				fmt.Printf("You already solved Wordle #%d in %d guesses!\n", num, prev.Guesses)
			} else {
				fmt.Printf("You already played Wordle #%d, the word was %q.\n", num, prev.Word)
			}
			fmt.Println("Come back tomorrow for a new word.")
			return
		}
	}

	width, height := terminalSize()
	opts := tui.GameOptions{
		Settings: wordle.Settings{
			WordLength: cfg.Game.WordLength,
			MaxGuesses: cfg.Game.MaxGuesses,
			Words:      answers,
			Allowed:    allowed,
			Strict:     cfg.Game.Strict,
			SetWord:    answers[daily.WordIndex(now, daily.DefaultSalt, len(answers))],
		},
		Mode:     storage.ModeDaily,
		Day:      day,
		DailyNum: num,
		Width:    width,
		Height:   height,
	}

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
