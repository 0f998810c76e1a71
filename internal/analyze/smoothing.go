package analyze

import "korpus/internal/model"

// GoodTuringEstimate holds simple Good-Turing adjusted counts derived from a
// table's frequency of frequencies
type GoodTuringEstimate struct {
	Adjusted   map[int]float64 `json:"adjusted_counts"` // observed count r -> r*
	UnseenMass float64         `json:"unseen_mass"`     // N1 / N, the mass reserved for unseen words
}

// GoodTuring computes the adjusted count r* = (r+1)·N(r+1)/N(r) for every
// observed count r, where N(r) is the number of words occurring exactly r
// times. Counts whose successor frequency is unobserved keep their raw value;
// a fuller treatment would smooth the N(r) curve first, which this corpus
// size does not warrant.
func GoodTuring(table *model.FrequencyTable) *GoodTuringEstimate {
	freqOfFreq := make(map[int]int)
	for _, e := range table.Entries {
		if e.Count > 0 {
			freqOfFreq[e.Count]++
		}
	}

	est := &GoodTuringEstimate{Adjusted: make(map[int]float64, len(freqOfFreq))}
	for r, n := range freqOfFreq {
		if next := freqOfFreq[r+1]; next > 0 {
			est.Adjusted[r] = float64(r+1) * float64(next) / float64(n)
		} else {
			est.Adjusted[r] = float64(r)
		}
	}
	if table.Total > 0 {
		est.UnseenMass = float64(freqOfFreq[1]) / float64(table.Total)
	}
	return est
}
