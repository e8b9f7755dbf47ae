package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagLimit       int
	flagCSV         string
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and statistics",
	Long: `Display the best runs, the stored best score and score statistics.

Examples:
  skyhop scores
  skyhop scores --limit 25
  skyhop scores -i                 # Browse in a table
  skyhop scores --csv runs.csv     # Export every run ("-" for stdout)
  skyhop scores --clear            # Delete history and best score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagCSV, "csv", "", "Export all runs as CSV to this file (- for stdout)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the best score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		clearScores(store, gameCfg.Storage.BestKey)
	case flagCSV != "":
		exportScores(store)
	case flagInteractive:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flappy.GameID, "Skyhop", width, height); err != nil {
			store.Close()
			exitf("running scoreboard: %v", err)
		}
	default:
		printScores(store, gameCfg.Storage.BestKey)
	}
}

func clearScores(store *storage.Store, bestKey string) {
	if err := store.ClearScores(flappy.GameID); err != nil {
		store.Close()
		exitf("%v", err)
	}
	if err := store.Delete(bestKey); err != nil {
		store.Close()
		exitf("%v", err)
	}
	fmt.Println("Run history and best score cleared.")
}

func exportScores(store *storage.Store) {
	entries, err := store.AllScores(flappy.GameID)
	if err != nil {
		store.Close()
		exitf("%v", err)
	}

	out := os.Stdout
	if flagCSV != "-" {
		f, err := os.Create(flagCSV)
		if err != nil {
			store.Close()
			exitf("cannot create %s: %v", flagCSV, err)
		}
		defer f.Close()
		out = f
	}

	if err := storage.ExportCSV(out, entries); err != nil {
		store.Close()
		exitf("%v", err)
	}
	if flagCSV != "-" {
		fmt.Printf("Exported %d runs to %s\n", len(entries), flagCSV)
	}
}

func printScores(store *storage.Store, bestKey string) {
	scores, err := store.TopScores(flappy.GameID, flagLimit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	best := 0
	if raw, ok, err := store.Get(bestKey); err == nil && ok {
		best, _ = strconv.Atoi(raw)
	}

	fmt.Println("High Scores - Skyhop")
	fmt.Println()
	fmt.Printf("  Best score: %d\n", best)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "Rank", "Score", "Hit", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "----", "-----", "---", "----")
	for i, e := range scores {
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-6d  %-7s  %s\n", i+1, e.Score, e.Cause, date)
	}

	writeStats(os.Stdout, store)
}

// runSource lists every recorded run of a game.
type runSource interface {
	AllScores(gameID string) ([]storage.ScoreEntry, error)
}

// writeStats prints the statistics line over all recorded runs.
func writeStats(w io.Writer, src runSource) {
	all, err := src.AllScores(flappy.GameID)
	if err != nil {
		fmt.Fprintf(w, "\n  Statistics unavailable: %v\n", err)
		return
	}
	s := storage.Summarize(all)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Runs: %d  Mean: %.1f  StdDev: %.1f  Median: %.0f  P90: %.0f\n",
		s.Runs, s.Mean, s.StdDev, s.Median, s.P90)
}
