package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The window is not resizable;
--scale multiplies its size.

Controls:
  Left/A, Right/D  - Move
  R                - Restart
  P/Esc            - Pause
  F1/` + "`" + `           - Toggle bounding boxes
  Q                - Quit

Examples:
  doodle window
  doodle window --scale 2 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	e, err := setup()
	if err != nil {
		fail("%v", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game := doodle.NewWithConfig(e.cfg)
	runErr := window.Run(game, cfg, window.Options{
		Scale:    flagScale,
		Recorder: e.recorderConfig(),
	})

	e.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
