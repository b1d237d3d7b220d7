// doodle is an endless vertical jumper for the terminal and the desktop.
//
// Usage:
//
//	doodle play      - Play in the terminal
//	doodle window    - Play in a desktop window
//	doodle menu      - Start menu with play and high scores
//	doodle serve     - Start SSH server for remote play
//	doodle scores    - Show high scores (requires --db)
//	doodle config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set terminal tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Save runs to a scores database
//	--config <path>     - Load a custom config YAML
//	--sound             - Play sound effects
//	--log-file <path>   - Write a session log
//	--log-level <level> - Log level for --log-file (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle - an endless jumper for your terminal",
	Long: `Doodle is an endless vertical jumper. Bounce from tile to tile,
wrap around the sides and climb as high as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Start menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  doodle play
  doodle play --seed 42 --db ~/.doodle/scores.db
  doodle window --scale 2 --sound
  doodle serve --ssh :2222
  doodle scores --db ~/.doodle/scores.db`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (runs are not saved when empty)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
