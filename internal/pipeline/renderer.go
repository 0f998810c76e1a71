package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"korpus/internal/lexmodel"
	"korpus/internal/model"
)

// Renderer writes pipeline artifacts into the output directory
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer rooted at dir, creating it if needed
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Renderer{dir: dir}, nil
}

func (r *Renderer) path(name string) string {
	return filepath.Join(r.dir, name)
}

// WriteJSON writes v as indented JSON under the given artifact name
func (r *Renderer) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(r.path(name), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// WriteText writes a text artifact
func (r *Renderer) WriteText(name, content string) error {
	if err := os.WriteFile(r.path(name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// PreprocessingReport formats the human-readable extraction summary
func (r *Renderer) PreprocessingReport(stats model.CorpusStats, longest []model.ArticleMeta) string {
	var b strings.Builder
	b.WriteString("CORPUS PREPROCESSING REPORT\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Pages seen:            %d\n", stats.PagesSeen)
	fmt.Fprintf(&b, "Articles extracted:    %d\n", stats.TotalArticles)
	fmt.Fprintf(&b, "Skipped meta pages:    %d\n", stats.SkippedMeta)
	fmt.Fprintf(&b, "Skipped redirects:     %d\n", stats.SkippedRedirects)
	fmt.Fprintf(&b, "Markup removed:        %d chars\n", stats.MarkupRemovedChars)
	fmt.Fprintf(&b, "Corpus characters:     %d\n", stats.TotalCharacters)
	fmt.Fprintf(&b, "Corpus words:          %d\n", stats.TotalWords)
	if stats.TotalArticles > 0 {
		fmt.Fprintf(&b, "Avg words per article: %.1f\n", float64(stats.TotalWords)/float64(stats.TotalArticles))
	}

	if len(longest) > 0 {
		b.WriteString("\nLongest articles:\n")
		for i, m := range longest {
			fmt.Fprintf(&b, "  %2d. %-40s %6d words\n", i+1, m.Title, m.WordCount)
		}
	}
	return b.String()
}

// WordlistTSV formats the keyboard wordlist: one word per line, tab-separated
// count, descending frequency
func (r *Renderer) WordlistTSV(table *model.FrequencyTable) string {
	var b strings.Builder
	for _, e := range table.Entries {
		fmt.Fprintf(&b, "%s\t%d\n", e.Symbol, e.Count)
	}
	return b.String()
}

// TopWordsText formats the top-n rows of a word table for quick inspection
func (r *Renderer) TopWordsText(table *model.FrequencyTable, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-20s %10s %9s\n", "RANK", "WORD", "COUNT", "PCT")
	for i, e := range table.TopN(n) {
		fmt.Fprintf(&b, "%-6d %-20s %10d %8.3f%%\n", i+1, e.Symbol, e.Count, e.Percentage)
	}
	return b.String()
}

// WordFrequenciesText formats the full unigram model: word, count, probability
func (r *Renderer) WordFrequenciesText(m *lexmodel.Model) string {
	var b strings.Builder
	for _, e := range m.Words.Entries {
		fmt.Fprintf(&b, "%s %d %.8f\n", e.Symbol, e.Count, m.WordStats[e.Symbol].Probability)
	}
	return b.String()
}

// BigramsText formats the bigram model sorted by descending pair count
func (r *Renderer) BigramsText(m *lexmodel.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-30s %8s %12s\n", "BIGRAM", "COUNT", "P(w2|w1)")
	for _, e := range m.BigramTable.Entries {
		parts := strings.SplitN(e.Symbol, " ", 2)
		if len(parts) != 2 {
			continue
		}
		s := m.Bigrams[parts[0]][parts[1]]
		fmt.Fprintf(&b, "%-30s %8d %12.6f\n", e.Symbol, e.Count, s.ConditionalProbability)
	}
	return b.String()
}

// TrigramsText formats the trigram counts, descending
func (r *Renderer) TrigramsText(table *model.FrequencyTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-45s %8s\n", "TRIGRAM", "COUNT")
	for _, e := range table.Entries {
		fmt.Fprintf(&b, "%-45s %8d\n", e.Symbol, e.Count)
	}
	return b.String()
}

// LongestArticles returns the top-n articles by word count without disturbing
// the caller's slice
func LongestArticles(meta []model.ArticleMeta, n int) []model.ArticleMeta {
	sorted := make([]model.ArticleMeta, len(meta))
	copy(sorted, meta)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WordCount > sorted[j].WordCount
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
