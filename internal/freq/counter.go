// Package freq builds frequency tables over symbol streams: characters,
// character n-grams, and word tokens. A single pass increments a count per
// occurrence; the ordered table view is materialized once at the end.
package freq

import (
	"sort"

	"korpus/internal/model"
)

// Counter accumulates symbol counts while remembering first-seen order, so
// equal counts get a stable ordering in the final table.
type Counter struct {
	kind   string
	counts map[string]int
	order  []string
	total  int
}

// NewCounter creates a counter for the given table kind
func NewCounter(kind string) *Counter {
	return &Counter{
		kind:   kind,
		counts: make(map[string]int),
	}
}

// Add records one occurrence of a symbol
func (c *Counter) Add(symbol string) {
	if _, seen := c.counts[symbol]; !seen {
		c.order = append(c.order, symbol)
	}
	c.counts[symbol]++
	c.total++
}

// Total returns the number of occurrences recorded
func (c *Counter) Total() int {
	return c.total
}

// Distinct returns the number of distinct symbols recorded
func (c *Counter) Distinct() int {
	return len(c.counts)
}

// Table materializes the ordered frequency table: descending count, ties in
// first-seen order. The counter can keep accumulating afterwards; each call
// builds a fresh snapshot.
func (c *Counter) Table() *model.FrequencyTable {
	symbols := make([]string, len(c.order))
	copy(symbols, c.order)

	sort.SliceStable(symbols, func(i, j int) bool {
		return c.counts[symbols[i]] > c.counts[symbols[j]]
	})

	entries := make([]model.Entry, len(symbols))
	for i, s := range symbols {
		count := c.counts[s]
		var pct float64
		if c.total > 0 {
			pct = float64(count) / float64(c.total) * 100
		}
		entries[i] = model.Entry{Symbol: s, Count: count, Percentage: pct}
	}

	return model.NewFrequencyTable(c.kind, entries, c.total)
}
