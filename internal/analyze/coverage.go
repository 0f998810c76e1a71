package analyze

import (
	"sort"
	"strconv"

	"korpus/internal/model"
)

// Coverage evaluates the cumulative coverage curve of a frequency table at
// the given vocabulary-size checkpoints, and finds the vocabulary size needed
// to reach each coverage target percentage. The final point is always the
// full vocabulary, which covers exactly 100%.
func Coverage(table *model.FrequencyTable, checkpoints []int, targets []float64) *model.CoverageCurve {
	vocab := table.Len()
	total := table.Total

	// Cumulative counts over the descending-frequency order
	cumulative := make([]int, vocab)
	sum := 0
	for i, e := range table.Entries {
		sum += e.Count
		cumulative[i] = sum
	}

	points := evaluationSizes(checkpoints, vocab)
	curve := &model.CoverageCurve{
		TargetVocab: make(map[string]int),
		VocabSize:   vocab,
		TotalTokens: total,
	}

	for _, size := range points {
		covered := cumulative[size-1]
		pct := 100.0
		if total > 0 {
			pct = float64(covered) / float64(total) * 100
		}
		curve.Points = append(curve.Points, model.CoveragePoint{
			VocabSize:     size,
			TokensCovered: covered,
			CoveragePct:   pct,
			VocabPct:      float64(size) / float64(vocab) * 100,
		})
	}

	for _, target := range targets {
		key := strconv.FormatFloat(target, 'g', -1, 64)
		for i, covered := range cumulative {
			if total > 0 && float64(covered)/float64(total)*100 >= target {
				curve.TargetVocab[key] = i + 1
				break
			}
		}
	}

	return curve
}

// evaluationSizes keeps checkpoints within the vocabulary and appends the
// full vocabulary size, sorted ascending
func evaluationSizes(checkpoints []int, vocab int) []int {
	if vocab == 0 {
		return nil
	}

	sizes := make([]int, 0, len(checkpoints)+1)
	seen := make(map[int]bool)
	for _, cp := range checkpoints {
		if cp > 0 && cp <= vocab && !seen[cp] {
			sizes = append(sizes, cp)
			seen[cp] = true
		}
	}
	if !seen[vocab] {
		sizes = append(sizes, vocab)
	}
	sort.Ints(sizes)
	return sizes
}
