// skyhop is a side-scrolling flap-through-the-gaps game for the terminal,
// a desktop window, or SSH.
//
// Usage:
//
//	skyhop play           - Play in the terminal
//	skyhop window         - Play in a desktop window
//	skyhop serve          - Start SSH server for remote play
//	skyhop scores         - Show recorded runs and statistics
//	skyhop config         - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.skyhop/scores.db)
//	--config <path>    - Load game tuning from a YAML file
//	--log-file <path>  - Write logs of terminal play to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - flap through the gaps",
	Long: `Skyhop is a one-button side-scroller: keep the bird in the air
and steer it through the gaps between the pipes.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - Show recorded runs and statistics
  config   - Print the effective game configuration

Examples:
  skyhop play
  skyhop play --seed 42 --config ./easy.yaml
  skyhop window
  skyhop serve --ssh :2222
  skyhop scores --csv runs.csv`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write terminal play logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game configuration or exits.
func loadConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	return cfg
}

// backend is where a game session keeps its best score and run history.
type backend struct {
	store   *storage.Store // nil when the database could not be opened
	kv      flappy.KV
	history *storage.Store
}

// openBackend opens the scores database. When that fails the session keeps
// its best score in memory and records no history.
func openBackend(logger *log.Logger) backend {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, best score will not be saved", "error", err)
		return backend{kv: storage.NewMemoryKV()}
	}
	return backend{store: store, kv: store, history: store}
}

// Close releases the database, if any.
func (b backend) Close() {
	if b.store != nil {
		b.store.Close()
	}
}
