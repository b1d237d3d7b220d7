package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  R            - Restart
  P/Esc        - Pause
  F1/` + "`" + `       - Toggle bounding boxes
  Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so a direction counts as
held for host.hold_window_ms (default 150) after each press or repeat.
The first auto-repeat usually arrives 250-660 ms after the press, so a
held key briefly drops out before repeats take over. Raise
hold_window_ms above your keyboard's repeat delay to remove the gap, at
the cost of the player drifting that long after the key is let go.

Examples:
  doodle play
  doodle play --seed 42
  doodle play --config ./my-doodle.yaml
  doodle play --db ~/.doodle/scores.db --log-file ./doodle.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	e, err := setup()
	if err != nil {
		fail("%v", err)
	}

	game := doodle.NewWithConfig(e.cfg)
	runErr := tui.Run(game, runtimeConfig(), e.tuiOptions())

	// Close store before potential exit
	e.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
