package model

// CorpusStats tracks what the extraction stage processed
type CorpusStats struct {
	TotalArticles      int `json:"total_articles"`
	PagesSeen          int `json:"pages_seen"`
	SkippedMeta        int `json:"skipped_meta"`
	SkippedRedirects   int `json:"skipped_redirects"`
	TotalCharacters    int `json:"total_characters"`
	TotalWords         int `json:"total_words"`
	MarkupRemovedChars int `json:"markup_removed_chars"`
}

// ArticleMeta is per-article metadata for corpus quality assessment
type ArticleMeta struct {
	Title     string `json:"title"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

// CoveragePoint is one evaluation of the cumulative coverage curve
type CoveragePoint struct {
	VocabSize     int     `json:"vocab_size"`     // Top-N distinct words considered
	TokensCovered int     `json:"tokens_covered"` // Sum of their counts
	CoveragePct   float64 `json:"coverage_pct"`   // Fraction of all token occurrences, as a percentage
	VocabPct      float64 `json:"vocab_pct"`      // Fraction of the full vocabulary, as a percentage
}

// CoverageCurve is the cumulative coverage of a frequency table, evaluated at
// fixed vocabulary-size checkpoints. Monotonically non-decreasing, capped at
// 100% which is reached exactly at the full vocabulary size.
type CoverageCurve struct {
	Points      []CoveragePoint `json:"points"`
	TargetVocab map[string]int  `json:"target_vocab"` // Formatted coverage target (%) -> words needed; string keys so fractional targets like 99.5 stay distinct
	VocabSize   int             `json:"vocab_size"`
	TotalTokens int             `json:"total_tokens"`
}

// ZipfFit is the result of a rank-frequency log-log regression
type ZipfFit struct {
	Slope          float64 `json:"slope"`
	Intercept      float64 `json:"intercept"`
	Correlation    float64 `json:"correlation"`
	Zipfian        bool    `json:"zipfian"`           // Correlation at or below the configured threshold
	ConstantMean   float64 `json:"constant_mean"`     // Mean of freq*rank over the top ranks
	ConstantStdDev float64 `json:"constant_std_dev"`  // Std dev of freq*rank over the top ranks
	RankedWords    int     `json:"ranked_words"`      // Words with nonzero frequency that were ranked
}

// QualityMetrics are derived corpus quality indicators
type QualityMetrics struct {
	TypeTokenRatio float64 `json:"type_token_ratio"`
	HapaxLegomena  int     `json:"hapax_legomena"`  // Words with count == 1
	HapaxFraction  float64 `json:"hapax_fraction"`  // As a fraction of vocabulary size, in [0, 1]
	DisLegomena    int     `json:"dis_legomena"`    // Words with count == 2
	DisFraction    float64 `json:"dis_fraction"`
	AvgWordLength  float64 `json:"avg_word_length"` // Token-weighted, in runes
}
