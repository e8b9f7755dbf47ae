package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRow is one exported run.
type csvRow struct {
	Rank     int    `csv:"rank"`
	Score    int    `csv:"score"`
	Cause    string `csv:"cause"`
	PlayedAt string `csv:"played_at"`
}

// ExportCSV writes runs as CSV with a header row, ranked in the given order.
func ExportCSV(w io.Writer, entries []ScoreEntry) error {
	rows := make([]csvRow, len(entries))
	for i, e := range entries {
		played := ""
		if !e.CreatedAt.IsZero() {
			played = e.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows[i] = csvRow{
			Rank:     i + 1,
			Score:    e.Score,
			Cause:    e.Cause,
			PlayedAt: played,
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("storage: cannot export scores: %w", err)
	}
	return nil
}
