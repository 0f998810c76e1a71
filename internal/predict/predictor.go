// Package predict answers prefix-completion and next-word queries over a
// built lexical model, the same lookups a predictive-text keyboard performs.
package predict

import (
	"sort"
	"strings"
	"time"

	"korpus/internal/lexmodel"

	gocache "github.com/patrickmn/go-cache"
)

// Suggestion is one candidate word with its supporting statistics
type Suggestion struct {
	Word        string  `json:"word"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// Predictor serves interactive lookups over a lexical model. Results are
// memoized: an interactive session tends to re-query the same prefixes as
// the user types and erases.
type Predictor struct {
	model *lexmodel.Model
	cache *gocache.Cache
}

// New creates a predictor over a built model
func New(m *lexmodel.Model) *Predictor {
	return &Predictor{
		model: m,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Complete returns the top-n words starting with prefix, ordered by
// descending corpus frequency
func (p *Predictor) Complete(prefix string, n int) []Suggestion {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || n <= 0 {
		return nil
	}

	key := "prefix:" + prefix
	if cached, found := p.cache.Get(key); found {
		return top(cached.([]Suggestion), n)
	}

	var matches []Suggestion
	for _, e := range p.model.Words.Entries {
		if strings.HasPrefix(e.Symbol, prefix) {
			matches = append(matches, Suggestion{
				Word:        e.Symbol,
				Count:       e.Count,
				Probability: p.model.WordStats[e.Symbol].Probability,
			})
		}
	}
	// Entries are already in descending-count order, so matches are too
	p.cache.Set(key, matches, gocache.DefaultExpiration)
	return top(matches, n)
}

// NextWord returns the top-n words following prev, ordered by descending
// conditional probability with count as the tiebreak
func (p *Predictor) NextWord(prev string, n int) []Suggestion {
	prev = strings.ToLower(strings.TrimSpace(prev))
	if prev == "" || n <= 0 {
		return nil
	}

	key := "next:" + prev
	if cached, found := p.cache.Get(key); found {
		return top(cached.([]Suggestion), n)
	}

	following, ok := p.model.Bigrams[prev]
	if !ok {
		p.cache.Set(key, []Suggestion(nil), gocache.DefaultExpiration)
		return nil
	}

	matches := make([]Suggestion, 0, len(following))
	for word, s := range following {
		matches = append(matches, Suggestion{
			Word:        word,
			Count:       s.Count,
			Probability: s.ConditionalProbability,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Probability != matches[j].Probability {
			return matches[i].Probability > matches[j].Probability
		}
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return matches[i].Word < matches[j].Word
	})

	p.cache.Set(key, matches, gocache.DefaultExpiration)
	return top(matches, n)
}

func top(s []Suggestion, n int) []Suggestion {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
