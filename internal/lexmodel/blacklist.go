package lexmodel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Blacklist filters non-lexical tokens out of the word table before the
// lexical model is built: markup residue, foreign words, proper nouns, codes.
// The whitelist takes precedence so short Kashubian function words survive
// even when they collide with a blacklist category.
type Blacklist struct {
	Categories map[string][]string `yaml:"categories"`
	Whitelist  []string            `yaml:"whitelist"`

	categoryOf map[string]string
	protected  map[string]bool
}

// FilterStats records what the blacklist removed
type FilterStats struct {
	OriginalWords  int            `json:"original_words"`
	RemovedWords   int            `json:"removed_words"`
	PercentRemoved float64        `json:"percent_removed"`
	ByCategory     map[string]int `json:"by_category"`
	Protected      int            `json:"protected_by_whitelist"`
}

// LoadBlacklist reads a YAML blacklist file. An empty path returns the
// built-in Kashubian list.
func LoadBlacklist(path string) (*Blacklist, error) {
	if path == "" {
		return DefaultBlacklist(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}

	var b Blacklist
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse blacklist: %w", err)
	}
	b.buildIndex()
	return &b, nil
}

// DefaultBlacklist returns the built-in list for the Kashubian Wikipedia
// corpus. It targets the pollution actually observed in the dump: table
// markup that survives stripping, English and German content words from
// citation blocks, and high-frequency proper nouns.
func DefaultBlacklist() *Blacklist {
	b := &Blacklist{
		Categories: map[string][]string{
			"web_markup": {
				"html", "div", "span", "class", "style", "href", "alt", "src",
				"table", "tbody", "thead", "tr", "td", "th",
				"left", "right", "center", "top", "bottom", "width", "height",
				"padding", "margin", "border", "background", "bgcolor", "solid",
				"align", "valign", "px", "pt", "em",
				"cellpadding", "cellspacing", "colspan", "rowspan",
				"http", "https", "www", "com", "org", "net", "edu", "gov",
				"jpg", "jpeg", "png", "gif", "svg", "pdf", "htm", "php",
				"wikitable", "thumb", "thumbnail", "frame", "frameless", "upright",
				"caption", "file", "image", "link", "collapse",
				"nbsp", "amp", "lt", "gt", "quot",
				"ffffff", "efefef", "cccccc",
			},
			"english": {
				"the", "of", "and", "or", "in", "on", "at", "for", "from",
				"with", "about", "by", "as", "is", "was", "are", "be", "been",
				"have", "has", "had", "does", "did", "will", "would", "could",
				"should", "may", "might", "can", "must",
				"he", "she", "it", "they", "me", "him", "her",
				"us", "them", "my", "your", "his", "its", "our", "their",
				"new", "world", "history", "archive", "records", "press",
				"university", "journal", "volume", "page", "edition",
				"published", "edited",
			},
			"foreign": {
				"und", "der", "die", "das", "von", "zu", "im", "am", "ist",
				"wird", "werden", "wurde", "wurden",
				"jest", "został", "została", "były", "miał",
			},
			"proper_nouns": {
				"piotr", "paweł", "józef", "jan", "jana", "anna", "maria",
				"adam", "jerzy", "katarzyna", "wilhelm", "bernard",
				"aleksander", "stanisław", "andrzej",
			},
			"codes": {
				"isbn", "issn", "doi", "url", "ref", "id", "nr",
			},
		},
		Whitelist: []string{
			// Single-letter prepositions and core function words
			"w", "z", "s", "k", "ò", "i", "a",
			"to", "të", "më", "òn", "òna", "òno", "le",
			"je", "są", "ma", "mô", "no", "ja", "co",
			// Diacritic letters counted as words when spelled out
			"ã", "é", "ë", "ó",
		},
	}
	b.buildIndex()
	return b
}

func (b *Blacklist) buildIndex() {
	b.categoryOf = make(map[string]string)
	for category, words := range b.Categories {
		for _, w := range words {
			if _, dup := b.categoryOf[w]; !dup {
				b.categoryOf[w] = category
			}
		}
	}
	b.protected = make(map[string]bool, len(b.Whitelist))
	for _, w := range b.Whitelist {
		b.protected[w] = true
	}
}

// Keep reports whether a lowercase word survives filtering
func (b *Blacklist) Keep(word string) bool {
	if b.protected[word] {
		return true
	}
	_, listed := b.categoryOf[word]
	return !listed
}

// Filter drops blacklisted words from a token sequence, preserving order
func (b *Blacklist) Filter(words []string) ([]string, FilterStats) {
	stats := FilterStats{
		OriginalWords: len(words),
		ByCategory:    make(map[string]int),
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if b.protected[w] {
			stats.Protected++
			kept = append(kept, w)
			continue
		}
		if category, listed := b.categoryOf[w]; listed {
			stats.ByCategory[category]++
			stats.RemovedWords++
			continue
		}
		kept = append(kept, w)
	}

	if stats.OriginalWords > 0 {
		stats.PercentRemoved = float64(stats.RemovedWords) / float64(stats.OriginalWords) * 100
	}
	return kept, stats
}
