package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration that play, window and serve would use,
after applying --config or the first config file found in
~/.skyhop/configs/flappy.yaml and ./configs/flappy.yaml.

Redirect the output to start a custom config:
  skyhop config > ~/.skyhop/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.Marshal(loadConfig())
		if err != nil {
			exitf("%v", err)
		}
		os.Stdout.Write(data)
	},
}
