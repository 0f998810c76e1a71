package pipeline

// Fixed artifact names, directory-relative. Each stage reads the previous
// stage's outputs by these names; reruns overwrite.
const (
	FileTokens        = "tokens_preprocessed.txt"
	FileCharacters    = "characters_preprocessed.txt"
	FileCorpusStats   = "preprocessing_stats.json"
	FileArticleMeta   = "article_metadata.json"
	FileReport        = "preprocessing_report.txt"

	FileCharResults     = "character_frequency_results.json"
	FileDigraphResults  = "digraph_frequency_results.json"
	FileTrigraphResults = "trigraph_frequency_results.json"
	FileCharChart       = "character_frequency_chart.png"
	FileDiacriticChart  = "diacritic_frequency_chart.png"
	FileDigraphChart    = "digraph_frequency_chart.png"

	FileWordResults     = "word_frequency_results.json"
	FileZipfResults     = "zipf_analysis_results.json"
	FileCoverageResults = "coverage_analysis_results.json"
	FileZipfChart       = "zipf_law_validation.png"
	FileRankFreqChart   = "word_frequency_distribution.png"
	FileCoverageChart   = "vocabulary_coverage_curve.png"
	FileSpectrumChart   = "frequency_spectrum.png"

	FileLexicalModel  = "lexical_model.json"
	FileLexicalTop    = "lexical_model_top1000.txt"
	FileWordFreqs     = "word_frequencies.txt"
	FileWordlist      = "lexical_model_wordlist.txt"
	FileBigramsJSON   = "language_model_bigrams.json"
	FileBigramsText   = "language_model_bigrams.txt"
	FileTrigramsText  = "language_model_trigrams.txt"
)

// ExtractOutputs are the artifacts the extraction stage must produce
func ExtractOutputs() []string {
	return []string{FileTokens, FileCharacters, FileCorpusStats, FileArticleMeta, FileReport}
}

// CharOutputs are the artifacts of the character analysis stage
func CharOutputs(charts bool) []string {
	out := []string{FileCharResults, FileDigraphResults, FileTrigraphResults}
	if charts {
		out = append(out, FileCharChart, FileDiacriticChart, FileDigraphChart)
	}
	return out
}

// WordOutputs are the artifacts of the word analysis stage
func WordOutputs(charts bool) []string {
	out := []string{FileWordResults, FileZipfResults, FileCoverageResults}
	if charts {
		out = append(out, FileZipfChart, FileRankFreqChart, FileCoverageChart, FileSpectrumChart)
	}
	return out
}

// LexModelOutputs are the artifacts of the lexical model stage
func LexModelOutputs() []string {
	return []string{
		FileLexicalModel, FileLexicalTop, FileWordFreqs, FileWordlist,
		FileBigramsJSON, FileBigramsText, FileTrigramsText,
	}
}

// AllOutputs is the complete artifact list the master command verifies
func AllOutputs(charts bool) []string {
	var out []string
	out = append(out, ExtractOutputs()...)
	out = append(out, CharOutputs(charts)...)
	out = append(out, WordOutputs(charts)...)
	out = append(out, LexModelOutputs()...)
	return out
}
