// Package analyze derives corpus statistics from frequency tables: Zipf
// rank-frequency fits, cumulative coverage, and vocabulary quality metrics.
package analyze

import (
	"fmt"
	"math"

	"korpus/internal/model"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// FitZipf regresses log10(frequency) on log10(rank) over a word frequency
// table. Ranks are 1-indexed positions in descending-count order; ties get
// consecutive ranks in the table's stable order, and zero-count symbols are
// never ranked. A correlation at or below threshold confirms a Zipfian
// distribution.
func FitZipf(table *model.FrequencyTable, topRanks int, threshold float64) (*model.ZipfFit, error) {
	logRanks, logFreqs := LogLogPoints(table)
	if len(logRanks) < 2 {
		return nil, fmt.Errorf("zipf fit needs at least 2 ranked words, have %d", len(logRanks))
	}

	corr := stat.Correlation(logRanks, logFreqs, nil)
	intercept, slope := stat.LinearRegression(logRanks, logFreqs, nil, false)

	// Zipf's constant: freq*rank should stay roughly flat over the head of
	// the distribution
	n := topRanks
	if n > len(logRanks) {
		n = len(logRanks)
	}
	constants := make([]float64, 0, n)
	rank := 0
	for _, e := range table.Entries {
		if e.Count <= 0 {
			continue
		}
		rank++
		if rank > n {
			break
		}
		constants = append(constants, float64(e.Count)*float64(rank))
	}
	mean, err := stats.Mean(constants)
	if err != nil {
		return nil, fmt.Errorf("zipf constant mean: %w", err)
	}
	stdDev, err := stats.StandardDeviation(constants)
	if err != nil {
		return nil, fmt.Errorf("zipf constant std dev: %w", err)
	}

	return &model.ZipfFit{
		Slope:          slope,
		Intercept:      intercept,
		Correlation:    corr,
		Zipfian:        corr <= threshold,
		ConstantMean:   mean,
		ConstantStdDev: stdDev,
		RankedWords:    len(logRanks),
	}, nil
}

// LogLogPoints returns the log10 rank/frequency pairs used for the fit and
// the validation scatter chart. Zero-count symbols are excluded.
func LogLogPoints(table *model.FrequencyTable) (logRanks, logFreqs []float64) {
	rank := 0
	for _, e := range table.Entries {
		if e.Count <= 0 {
			continue
		}
		rank++
		logRanks = append(logRanks, math.Log10(float64(rank)))
		logFreqs = append(logFreqs, math.Log10(float64(e.Count)))
	}
	return logRanks, logFreqs
}
