package storage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of run scores.
type Summary struct {
	Runs   int
	Best   int
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
}

// Summarize computes score statistics over runs.
// StdDev is zero with fewer than two runs; an empty input gives a zero Summary.
func Summarize(entries []ScoreEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	values := make([]float64, len(entries))
	best := 0
	for i, e := range entries {
		values[i] = float64(e.Score)
		if e.Score > best {
			best = e.Score
		}
	}
	sort.Float64s(values)

	sum := Summary{
		Runs:   len(values),
		Best:   best,
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, values, nil),
	}
	if len(values) < 2 {
		sum.Mean = values[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(values, nil)
	return sum
}
