package analyze

import (
	"fmt"
	"testing"

	"korpus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perfectZipfTable builds a table with count(r) = C/r exactly, so the log-log
// regression has correlation -1 and slope -1.
func perfectZipfTable(ranks int) *model.FrequencyTable {
	const c = 720720 // divisible by 1..16
	entries := make([]model.Entry, ranks)
	total := 0
	for r := 1; r <= ranks; r++ {
		entries[r-1] = model.Entry{Symbol: fmt.Sprintf("w%d", r), Count: c / r}
		total += c / r
	}
	return model.NewFrequencyTable("word", entries, total)
}

func TestFitZipfPerfectDistribution(t *testing.T) {
	table := perfectZipfTable(12)

	fit, err := FitZipf(table, 1000, -0.85)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, fit.Correlation, 1e-9)
	assert.InDelta(t, -1.0, fit.Slope, 1e-9)
	assert.True(t, fit.Zipfian)
	assert.Equal(t, 12, fit.RankedWords)

	// freq*rank is exactly C at every rank
	assert.InDelta(t, 720720, fit.ConstantMean, 1e-6)
	assert.InDelta(t, 0, fit.ConstantStdDev, 1e-6)
}

func TestFitZipfUniformIsNotZipfian(t *testing.T) {
	entries := make([]model.Entry, 20)
	for i := range entries {
		entries[i] = model.Entry{Symbol: fmt.Sprintf("w%d", i), Count: 100}
	}
	table := model.NewFrequencyTable("word", entries, 2000)

	fit, err := FitZipf(table, 1000, -0.85)
	require.NoError(t, err)

	// All frequencies equal: slope 0, no negative correlation
	assert.InDelta(t, 0, fit.Slope, 1e-9)
	assert.False(t, fit.Zipfian)
}

func TestFitZipfTooFewWords(t *testing.T) {
	table := model.NewFrequencyTable("word", []model.Entry{{Symbol: "w", Count: 5}}, 5)
	_, err := FitZipf(table, 1000, -0.85)
	assert.Error(t, err)
}

func TestFitZipfIgnoresZeroCounts(t *testing.T) {
	entries := []model.Entry{
		{Symbol: "a", Count: 100},
		{Symbol: "b", Count: 50},
		{Symbol: "c", Count: 0},
	}
	table := model.NewFrequencyTable("word", entries, 150)

	fit, err := FitZipf(table, 1000, -0.85)
	require.NoError(t, err)
	assert.Equal(t, 2, fit.RankedWords)
}

func TestLogLogPointsLength(t *testing.T) {
	table := perfectZipfTable(8)
	logRanks, logFreqs := LogLogPoints(table)
	assert.Len(t, logRanks, 8)
	assert.Len(t, logFreqs, 8)
	assert.InDelta(t, 0, logRanks[0], 1e-12) // log10(1)
}
