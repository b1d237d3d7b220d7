package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
High Scores is offered when --db is set. After game over or while
paused, B returns to the menu.

Examples:
  doodle menu
  doodle menu --db ~/.doodle/scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := setup()
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	cfg := runtimeConfig()
	title := doodle.New().Title()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(title, e.store, doodle.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(title, e.store, doodle.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			// A fixed --seed replays the same layout every time.
			playCfg := cfg
			if flagSeed == 0 {
				playCfg.Seed = time.Now().UnixNano()
			}

			game := doodle.NewWithConfig(e.cfg)
			back, runErr := tui.RunEmbedded(game, playCfg, e.tuiOptions())
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				return
			}
			if !back {
				return
			}

		default:
			return
		}
	}
}
