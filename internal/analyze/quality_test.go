package analyze

import (
	"testing"

	"korpus/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestQuality(t *testing.T) {
	entries := []model.Entry{
		{Symbol: "aa", Count: 3},
		{Symbol: "dd", Count: 2},
		{Symbol: "b", Count: 1},
		{Symbol: "c", Count: 1},
	}
	table := model.NewFrequencyTable("word", entries, 7)

	q := Quality(table)

	assert.Equal(t, 2, q.HapaxLegomena)
	assert.InDelta(t, 0.5, q.HapaxFraction, 1e-9)
	assert.Equal(t, 1, q.DisLegomena)
	assert.InDelta(t, 0.25, q.DisFraction, 1e-9)
	assert.InDelta(t, 4.0/7.0, q.TypeTokenRatio, 1e-9)

	// Token-weighted: (2*3 + 2*2 + 1 + 1) / 7
	assert.InDelta(t, 12.0/7.0, q.AvgWordLength, 1e-9)
}

func TestQualityFractionBounds(t *testing.T) {
	entries := []model.Entry{
		{Symbol: "a", Count: 1},
		{Symbol: "b", Count: 1},
	}
	q := Quality(model.NewFrequencyTable("word", entries, 2))

	assert.InDelta(t, 1.0, q.HapaxFraction, 1e-9, "all-hapax corpus")
	assert.InDelta(t, 1.0, q.TypeTokenRatio, 1e-9)
}

func TestQualityRuneLengths(t *testing.T) {
	entries := []model.Entry{{Symbol: "jãzëk", Count: 1}}
	q := Quality(model.NewFrequencyTable("word", entries, 1))

	assert.InDelta(t, 5.0, q.AvgWordLength, 1e-9, "length in runes, not bytes")
}

func TestQualityEmptyTable(t *testing.T) {
	q := Quality(model.NewFrequencyTable("word", nil, 0))
	assert.Zero(t, q.TypeTokenRatio)
	assert.Zero(t, q.HapaxLegomena)
}
