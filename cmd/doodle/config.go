package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The output is a complete config file:
  doodle config > ~/.doodle/configs/doodle.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
