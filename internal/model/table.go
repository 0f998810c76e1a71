package model

// Entry is a single row of a frequency table
type Entry struct {
	Symbol     string  `json:"symbol"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FrequencyTable is an immutable mapping from symbol to count with a
// materialized descending-count ordering. Ties keep first-seen order, so the
// ordering is stable across runs of the same corpus.
type FrequencyTable struct {
	Kind    string  `json:"kind"` // char, digraph, trigraph, word, bigram, trigram
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`

	index map[string]int // symbol -> position in Entries
}

// NewFrequencyTable builds a table from already-ordered entries.
// Callers are expected to hand in entries sorted by descending count;
// the freq package is the only producer.
func NewFrequencyTable(kind string, entries []Entry, total int) *FrequencyTable {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Symbol] = i
	}
	return &FrequencyTable{
		Kind:    kind,
		Entries: entries,
		Total:   total,
		index:   index,
	}
}

// Count returns the count for a symbol, zero if absent
func (t *FrequencyTable) Count(symbol string) int {
	if i, ok := t.index[symbol]; ok {
		return t.Entries[i].Count
	}
	return 0
}

// Rank returns the 1-indexed rank of a symbol in descending-count order
func (t *FrequencyTable) Rank(symbol string) (int, bool) {
	if i, ok := t.index[symbol]; ok {
		return i + 1, true
	}
	return 0, false
}

// Len returns the vocabulary size (number of distinct symbols)
func (t *FrequencyTable) Len() int {
	return len(t.Entries)
}

// TopN returns the n highest-count entries (fewer if the table is smaller)
func (t *FrequencyTable) TopN(n int) []Entry {
	if n > len(t.Entries) {
		n = len(t.Entries)
	}
	return t.Entries[:n]
}
