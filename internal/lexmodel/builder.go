// Package lexmodel builds the wordlist and n-gram models consumed by
// keyboard/predictive-text authoring tools.
package lexmodel

import (
	"fmt"

	"korpus/internal/analyze"
	"korpus/internal/freq"
	"korpus/internal/model"
)

// WordStat is the unigram entry for one word
type WordStat struct {
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	Percentage  float64 `json:"percentage"`
}

// BigramStat is one following-word entry of the bigram table
type BigramStat struct {
	Count                  int     `json:"count"`
	ConditionalProbability float64 `json:"conditional_probability"` // P(w2|w1) = count(w1,w2) / count(w1)
	JointProbability       float64 `json:"joint_probability"`       // count(w1,w2) / total bigrams
}

// Model is the complete lexical model built from the cleaned token sequence
type Model struct {
	Words        *model.FrequencyTable           `json:"-"`
	WordStats    map[string]WordStat             `json:"words"`
	Quality      *model.QualityMetrics           `json:"quality_metrics"`
	Cleaning     FilterStats                     `json:"cleaning"`
	TotalWords   int                             `json:"total_words"`
	UniqueWords  int                             `json:"unique_words"`
	Coverage     float64                         `json:"coverage_percentage"` // Of the unfiltered corpus
	Bigrams      map[string]map[string]BigramStat `json:"-"`
	BigramTable  *model.FrequencyTable           `json:"-"`
	TrigramTable *model.FrequencyTable           `json:"-"`
}

// Builder filters the token sequence and assembles unigram, bigram, and
// trigram models
type Builder struct {
	blacklist    *Blacklist
	minFrequency int
	maxWords     int
}

// NewBuilder creates a builder with the given filtering parameters.
// minFrequency below 1 keeps everything; maxWords of 0 means no cap.
func NewBuilder(blacklist *Blacklist, minFrequency, maxWords int) *Builder {
	if blacklist == nil {
		blacklist = DefaultBlacklist()
	}
	return &Builder{
		blacklist:    blacklist,
		minFrequency: minFrequency,
		maxWords:     maxWords,
	}
}

// Build constructs the lexical model from the raw token sequence
func (b *Builder) Build(tokens []string) (*Model, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty token sequence")
	}

	words, cleaning := b.blacklist.Filter(tokens)
	if len(words) == 0 {
		return nil, fmt.Errorf("no words survive the blacklist")
	}

	rawTotal := len(tokens)
	full := freq.CountTokens(words).Table()

	// Frequency threshold and size cap, keeping descending-count order
	kept := make([]model.Entry, 0, full.Len())
	keptTotal := 0
	for _, e := range full.Entries {
		if e.Count < b.minFrequency {
			continue
		}
		if b.maxWords > 0 && len(kept) >= b.maxWords {
			break
		}
		kept = append(kept, e)
		keptTotal += e.Count
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no words at or above minimum frequency %d", b.minFrequency)
	}

	// Percentages are relative to the kept vocabulary
	for i := range kept {
		kept[i].Percentage = float64(kept[i].Count) / float64(keptTotal) * 100
	}
	table := model.NewFrequencyTable("word", kept, keptTotal)

	wordStats := make(map[string]WordStat, table.Len())
	for _, e := range table.Entries {
		wordStats[e.Symbol] = WordStat{
			Count:       e.Count,
			Probability: float64(e.Count) / float64(keptTotal),
			Percentage:  e.Percentage,
		}
	}

	bigrams, bigramTable := buildBigrams(words)
	trigramTable := buildTrigrams(words)

	return &Model{
		Words:        table,
		WordStats:    wordStats,
		Quality:      analyze.Quality(table),
		Cleaning:     cleaning,
		TotalWords:   keptTotal,
		UniqueWords:  table.Len(),
		Coverage:     float64(keptTotal) / float64(rawTotal) * 100,
		Bigrams:      bigrams,
		BigramTable:  bigramTable,
		TrigramTable: trigramTable,
	}, nil
}

// buildBigrams scans adjacent token pairs and derives conditional
// probabilities against the first word's unigram count
func buildBigrams(words []string) (map[string]map[string]BigramStat, *model.FrequencyTable) {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	pairs := freq.NewCounter("bigram")
	for i := 0; i+1 < len(words); i++ {
		pairs.Add(words[i] + " " + words[i+1])
	}
	table := pairs.Table()
	totalPairs := table.Total

	bigrams := make(map[string]map[string]BigramStat)
	for i := 0; i+1 < len(words); i++ {
		w1, w2 := words[i], words[i+1]
		if _, done := bigrams[w1][w2]; done {
			continue
		}
		count := table.Count(w1 + " " + w2)
		if bigrams[w1] == nil {
			bigrams[w1] = make(map[string]BigramStat)
		}
		bigrams[w1][w2] = BigramStat{
			Count:                  count,
			ConditionalProbability: float64(count) / float64(counts[w1]),
			JointProbability:       float64(count) / float64(totalPairs),
		}
	}
	return bigrams, table
}

// buildTrigrams counts consecutive token triples
func buildTrigrams(words []string) *model.FrequencyTable {
	triples := freq.NewCounter("trigram")
	for i := 0; i+2 < len(words); i++ {
		triples.Add(words[i] + " " + words[i+1] + " " + words[i+2])
	}
	return triples.Table()
}

// AddOneSmoothedProb computes the Laplace-smoothed conditional probability
// for a bigram without materializing the full |V|x|V| matrix. Illustrative
// only; the exported models carry unsmoothed probabilities.
func (m *Model) AddOneSmoothedProb(w1, w2 string) float64 {
	vocab := m.UniqueWords
	w1Count := 0
	if s, ok := m.WordStats[w1]; ok {
		w1Count = s.Count
	}
	if w1Count == 0 {
		return 0
	}
	pairCount := 0
	if next, ok := m.Bigrams[w1]; ok {
		if s, ok := next[w2]; ok {
			pairCount = s.Count
		}
	}
	return float64(pairCount+1) / float64(w1Count+vocab)
}
