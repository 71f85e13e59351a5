package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fluunke/wordle/internal/storage"
)

var flagClear bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your play statistics",
	Long: `Display your play statistics: rounds played, win rate, streaks,
the guess distribution and your most recent rounds.

Examples:
  wordle stats
  wordle stats --clear
  wordle stats --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if clearErr := store.ClearResults(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if stats.Played == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordle play' or 'wordle daily' to start your history!")
		return
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  Played:         %d\n", stats.Played)
	fmt.Printf("  Won:            %d (%.0f%%)\n", stats.Won, stats.WinRate()*100)
	fmt.Printf("  Current streak: %d\n", stats.CurrentStreak)
	fmt.Printf("  Best streak:    %d\n", stats.MaxStreak)

	if len(stats.Distribution) > 0 {
		fmt.Println()
		fmt.Println("Guess distribution:")
		guesses := make([]int, 0, len(stats.Distribution))
		for g := range stats.Distribution {
			guesses = append(guesses, g)
		}
		sort.Ints(guesses)
		for _, g := range guesses {
			fmt.Printf("  %d: %d\n", g, stats.Distribution[g])
		}
	}

	results, err := store.RecentResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")

	// Print header
	fmt.Printf("  %-16s  %-8s  %-10s  %-7s  %s\n", "Date", "Mode", "Word", "Guesses", "Result")
	fmt.Printf("  %-16s  %-8s  %-10s  %-7s  %s\n", "----", "----", "----", "-------", "------")

	// Print rounds
	for _, r := range results {
		result := "lost"
		if r.Solved {
			result = "won"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8s  %-10s  %-7d  %s\n", dateStr, r.Mode, r.Word, r.Guesses, result)
	}
}
