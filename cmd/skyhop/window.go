package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/pixel"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play with pixel graphics.

Controls:
  Space/Up/W/click/tap  - Flap (the first flap starts the run)
  R/Enter/RESTART       - Restart (after game over)
  Esc                   - Quit

The window always runs at 60 frames per second; --fps is ignored.

Examples:
  skyhop window
  skyhop window --width 480 --height 720`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 400, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger := newLogger(os.Stderr)

	b := openBackend(logger)
	defer b.Close()

	opts := pixel.Options{
		Store:  b.kv,
		Logger: logger,
		Width:  flagWidth,
		Height: flagHeight,
		Seed:   flagSeed,
	}
	if b.history != nil {
		opts.History = b.history
	}

	if err := pixel.Run(gameCfg, opts); err != nil {
		b.Close()
		exitf("running window: %v", err)
	}
}
