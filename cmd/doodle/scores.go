package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs saved in the scores database.

Examples:
  doodle scores --db ~/.doodle/scores.db
  doodle scores --db ~/.doodle/scores.db --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every saved run")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fail("--db is required")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(doodle.GameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	runs, err := store.TopRuns(doodle.GameID, 10)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", doodle.New().Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'doodle play --db %s' to set the first high score!\n", flagDBPath)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-12s  %s\n", "Rank", "Score", "Bounces", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-12s  %s\n", "----", "-----", "-------", "----", "------", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-7d  %-8s  %-12s  %s\n",
			i+1, run.Score, run.Bounces, run.Duration.Round(100*time.Millisecond), run.Player,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(doodle.GameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
