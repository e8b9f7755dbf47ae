package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/K/click - Flap (the first flap starts the run)
  R/Enter           - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle key help
  Q/Esc/Ctrl+C      - Quit

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop play --config ./my-flappy.yaml --log-file skyhop.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	// The terminal belongs to the game, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			exitf("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	b := openBackend(logger)
	defer b.Close()

	opts := tui.Options{Logger: logger}
	if b.history != nil {
		opts.History = b.history
	}

	game := flappy.New(gameCfg, flappy.WithStore(b.kv))
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		b.Close()
		exitf("running game: %v", err)
	}
}
