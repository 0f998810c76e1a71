// Package pipeline orchestrates the corpus-statistics stages: extraction,
// character analysis, word analysis, and the lexical model build. Stages
// communicate through fixed-name files in the output directory, so each can
// be rerun on its own.
package pipeline

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"

	"korpus/internal/analyze"
	"korpus/internal/extract"
	"korpus/internal/freq"
	"korpus/internal/lexmodel"
	"korpus/internal/model"
	"korpus/internal/token"
	"korpus/internal/validate"
)

// Pipeline runs the corpus analysis stages against one output directory
type Pipeline struct {
	cfg       *model.Config
	tokenizer *token.Tokenizer
	render    *Renderer
	charts    *ChartRenderer
}

// New creates a pipeline from the configuration, preparing the output
// directory
func New(cfg *model.Config) (*Pipeline, error) {
	tokenizer, err := token.New(cfg.Language.Letters, diacriticChars(cfg))
	if err != nil {
		return nil, fmt.Errorf("build tokenizer: %w", err)
	}
	render, err := NewRenderer(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		tokenizer: tokenizer,
		render:    render,
		charts:    NewChartRenderer(cfg.Output.Dir),
	}, nil
}

func diacriticChars(cfg *model.Config) []string {
	chars := make([]string, len(cfg.Language.Diacritics))
	for i, d := range cfg.Language.Diacritics {
		chars[i] = d.Char
	}
	return chars
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Extract streams the dump, writing the token sequence, the character stream,
// extraction statistics, per-article metadata, and the preprocessing report.
func (p *Pipeline) Extract(dumpPath string) error {
	// Check the dump before touching any output: a bad path must not
	// truncate a previous run's artifacts
	if _, err := os.Stat(dumpPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", model.ErrInputNotFound, dumpPath)
		}
		return fmt.Errorf("stat dump: %w", err)
	}

	extractor, err := extract.NewExtractor(p.cfg)
	if err != nil {
		return err
	}

	tokensFile, err := os.Create(p.render.path(FileTokens))
	if err != nil {
		return fmt.Errorf("create tokens file: %w", err)
	}
	defer tokensFile.Close()
	charsFile, err := os.Create(p.render.path(FileCharacters))
	if err != nil {
		return fmt.Errorf("create characters file: %w", err)
	}
	defer charsFile.Close()

	tokensW := bufio.NewWriter(tokensFile)
	charsW := bufio.NewWriter(charsFile)

	var meta []model.ArticleMeta
	totalWords, totalChars := 0, 0

	err = extractor.Extract(dumpPath, func(a extract.Article) error {
		words := p.tokenizer.Words(a.Text)
		for _, w := range words {
			if _, err := tokensW.WriteString(w + "\n"); err != nil {
				return fmt.Errorf("write tokens: %w", err)
			}
		}

		stream := p.tokenizer.CharacterStream(a.Text)
		if totalChars > 0 && stream != "" {
			// Articles join at a token boundary
			if _, err := charsW.WriteRune(freq.Boundary); err != nil {
				return fmt.Errorf("write characters: %w", err)
			}
			totalChars++
		}
		if _, err := charsW.WriteString(stream); err != nil {
			return fmt.Errorf("write characters: %w", err)
		}

		chars := len([]rune(stream))
		totalWords += len(words)
		totalChars += chars
		meta = append(meta, model.ArticleMeta{
			Title:     a.Title,
			WordCount: len(words),
			CharCount: chars,
		})

		if len(meta)%200 == 0 {
			p.logf("  processed %d articles, %d words\n", len(meta), totalWords)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := tokensW.Flush(); err != nil {
		return fmt.Errorf("flush tokens: %w", err)
	}
	if err := charsW.Flush(); err != nil {
		return fmt.Errorf("flush characters: %w", err)
	}

	stats := extractor.Stats()
	stats.TotalWords = totalWords
	stats.TotalCharacters = totalChars

	if err := p.render.WriteJSON(FileCorpusStats, stats); err != nil {
		return err
	}
	if err := p.render.WriteJSON(FileArticleMeta, meta); err != nil {
		return err
	}
	report := p.render.PreprocessingReport(stats, LongestArticles(meta, 10))
	if err := p.render.WriteText(FileReport, report); err != nil {
		return err
	}

	p.logf("✓ extracted %d articles, %d words, %d characters\n",
		stats.TotalArticles, totalWords, totalChars)
	return nil
}

// rankedEntry is a frequency-table row with its explicit 1-based rank
type rankedEntry struct {
	Rank       int     `json:"rank"`
	Symbol     string  `json:"symbol"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func ranked(entries []model.Entry, offset int) []rankedEntry {
	out := make([]rankedEntry, len(entries))
	for i, e := range entries {
		out[i] = rankedEntry{Rank: offset + i + 1, Symbol: e.Symbol, Count: e.Count, Percentage: e.Percentage}
	}
	return out
}

type diacriticEntry struct {
	Char        string  `json:"char"`
	Description string  `json:"description"`
	Rank        int     `json:"rank"` // 0 when absent from the corpus
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type characterReport struct {
	TotalCharacters    int              `json:"total_characters"`
	DistinctCharacters int              `json:"distinct_characters"`
	TopCharacters      []rankedEntry    `json:"top_characters"`
	Diacritics         []diacriticEntry `json:"diacritics"`
}

type ngramReport struct {
	Kind          string        `json:"kind"`
	Total         int           `json:"total"`
	Distinct      int           `json:"distinct"`
	Top           []rankedEntry `json:"top"`
	PhonemicUnits []rankedEntry `json:"phonemic_units,omitempty"` // Configured digraphs only
}

// AnalyzeCharacters computes character, digraph, and trigraph frequency
// tables from the extracted character stream, with a dedicated breakdown of
// the language's diacritic letters.
func (p *Pipeline) AnalyzeCharacters() error {
	stream, err := p.readCharacterStream()
	if err != nil {
		return err
	}

	topN := p.cfg.Output.TopN
	chars := freq.CountCharacters(stream).Table()
	digraphs := freq.CountNGrams(stream, 2).Table()
	trigraphs := freq.CountNGrams(stream, 3).Table()

	diacritics := make([]diacriticEntry, 0, len(p.cfg.Language.Diacritics))
	for _, d := range p.cfg.Language.Diacritics {
		count := chars.Count(d.Char)
		pct := 0.0
		if chars.Total > 0 {
			pct = float64(count) / float64(chars.Total) * 100
		}
		rank, _ := chars.Rank(d.Char)
		diacritics = append(diacritics, diacriticEntry{
			Char:        d.Char,
			Description: d.Description,
			Rank:        rank,
			Count:       count,
			Percentage:  pct,
		})
	}
	sort.SliceStable(diacritics, func(i, j int) bool {
		return diacritics[i].Count > diacritics[j].Count
	})

	charReport := characterReport{
		TotalCharacters:    chars.Total,
		DistinctCharacters: chars.Len(),
		TopCharacters:      ranked(chars.TopN(topN), 0),
		Diacritics:         diacritics,
	}
	if err := p.render.WriteJSON(FileCharResults, charReport); err != nil {
		return err
	}

	phonemic := make([]rankedEntry, 0, len(p.cfg.Language.Digraphs))
	for _, dg := range p.cfg.Language.Digraphs {
		count := digraphs.Count(dg)
		pct := 0.0
		if digraphs.Total > 0 {
			pct = float64(count) / float64(digraphs.Total) * 100
		}
		rank, _ := digraphs.Rank(dg)
		phonemic = append(phonemic, rankedEntry{
			Rank: rank, Symbol: dg, Count: count, Percentage: pct,
		})
	}
	sort.SliceStable(phonemic, func(i, j int) bool { return phonemic[i].Count > phonemic[j].Count })

	if err := p.render.WriteJSON(FileDigraphResults, ngramReport{
		Kind: digraphs.Kind, Total: digraphs.Total, Distinct: digraphs.Len(),
		Top: ranked(digraphs.TopN(topN), 0), PhonemicUnits: phonemic,
	}); err != nil {
		return err
	}
	if err := p.render.WriteJSON(FileTrigraphResults, ngramReport{
		Kind: trigraphs.Kind, Total: trigraphs.Total, Distinct: trigraphs.Len(),
		Top: ranked(trigraphs.TopN(topN), 0),
	}); err != nil {
		return err
	}

	if p.cfg.Output.Charts {
		if err := p.charts.Bar(FileCharChart, "Character Frequency", "count",
			chars.TopN(topN), barBlue); err != nil {
			return err
		}
		diaEntries := make([]model.Entry, len(diacritics))
		for i, d := range diacritics {
			diaEntries[i] = model.Entry{Symbol: d.Char, Count: d.Count, Percentage: d.Percentage}
		}
		if err := p.charts.Bar(FileDiacriticChart, "Diacritic Frequency", "count",
			diaEntries, barRed); err != nil {
			return err
		}
		if err := p.charts.Bar(FileDigraphChart, "Digraph Frequency", "count",
			digraphs.TopN(topN), barBlue); err != nil {
			return err
		}
	}

	p.logf("✓ character analysis: %d characters, %d digraphs, %d trigraphs\n",
		chars.Total, digraphs.Total, trigraphs.Total)
	return nil
}

type wordReport struct {
	TotalWords     int                         `json:"total_words"`
	VocabularySize int                         `json:"vocabulary_size"`
	Quality        *model.QualityMetrics       `json:"quality_metrics"`
	TopWords       []rankedEntry               `json:"top_words"`
	Stopwords      stopwordReport              `json:"stopwords"`
	GoodTuring     *analyze.GoodTuringEstimate `json:"good_turing"`
}

// stopwordReport is the separate breakdown of the configured function words:
// they stay in every table, but their share of the corpus is reported on its
// own
type stopwordReport struct {
	Tokens   int           `json:"tokens"`
	SharePct float64       `json:"share_pct"`
	Top      []rankedEntry `json:"top"`
}

func stopwordBreakdown(table *model.FrequencyTable, stopwords []string, topN int) stopwordReport {
	rows := make([]rankedEntry, 0, len(stopwords))
	tokens := 0
	for _, w := range stopwords {
		count := table.Count(w)
		if count == 0 {
			continue
		}
		rank, _ := table.Rank(w)
		pct := float64(count) / float64(table.Total) * 100
		rows = append(rows, rankedEntry{Rank: rank, Symbol: w, Count: count, Percentage: pct})
		tokens += count
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if topN < len(rows) {
		rows = rows[:topN]
	}

	report := stopwordReport{Tokens: tokens, Top: rows}
	if table.Total > 0 {
		report.SharePct = float64(tokens) / float64(table.Total) * 100
	}
	return report
}

type zipfReport struct {
	Fit      *model.ZipfFit `json:"fit"`
	TopRanks []rankedEntry  `json:"top_ranks"`
}

// AnalyzeWords builds the word frequency table from the token file and runs
// the statistical analyses over it: quality metrics, Zipf fit, coverage.
func (p *Pipeline) AnalyzeWords() error {
	table, err := p.readWordTable()
	if err != nil {
		return err
	}

	quality := analyze.Quality(table)
	zipf, err := analyze.FitZipf(table, p.cfg.Analysis.ZipfTopRanks, p.cfg.Analysis.ZipfThreshold)
	if err != nil {
		return fmt.Errorf("zipf analysis: %w", err)
	}
	coverage := analyze.Coverage(table, p.cfg.Analysis.CoverageCheckpoints, p.cfg.Analysis.CoverageTargets)

	topN := p.cfg.Output.TopN
	if err := p.render.WriteJSON(FileWordResults, wordReport{
		TotalWords:     table.Total,
		VocabularySize: table.Len(),
		Quality:        quality,
		TopWords:       ranked(table.TopN(topN), 0),
		Stopwords:      stopwordBreakdown(table, p.cfg.Language.Stopwords, topN),
		GoodTuring:     analyze.GoodTuring(table),
	}); err != nil {
		return err
	}
	if err := p.render.WriteJSON(FileZipfResults, zipfReport{
		Fit:      zipf,
		TopRanks: ranked(table.TopN(topN), 0),
	}); err != nil {
		return err
	}
	if err := p.render.WriteJSON(FileCoverageResults, coverage); err != nil {
		return err
	}

	if p.cfg.Output.Charts {
		if err := p.renderWordCharts(table, zipf, coverage); err != nil {
			return err
		}
	}

	verdict := "not Zipfian"
	if zipf.Zipfian {
		verdict = "Zipfian"
	}
	p.logf("✓ word analysis: %d tokens, %d types, r=%.4f (%s)\n",
		table.Total, table.Len(), zipf.Correlation, verdict)
	return nil
}

func (p *Pipeline) renderWordCharts(table *model.FrequencyTable, zipf *model.ZipfFit, coverage *model.CoverageCurve) error {
	logRanks, logFreqs := analyze.LogLogPoints(table)
	if err := p.charts.ZipfScatter(FileZipfChart, logRanks, logFreqs, zipf); err != nil {
		return err
	}
	if err := p.charts.Line(FileRankFreqChart, "Word Frequency Distribution",
		"log10(rank)", "log10(frequency)", logRanks, logFreqs); err != nil {
		return err
	}

	xs := make([]float64, len(coverage.Points))
	ys := make([]float64, len(coverage.Points))
	for i, pt := range coverage.Points {
		xs[i] = float64(pt.VocabSize)
		ys[i] = pt.CoveragePct
	}
	if err := p.charts.Line(FileCoverageChart, "Vocabulary Coverage",
		"vocabulary size", "coverage %", xs, ys); err != nil {
		return err
	}

	// Frequency spectrum: how many words occur exactly k times, log-log
	spectrum := make(map[int]int)
	for _, e := range table.Entries {
		spectrum[e.Count]++
	}
	counts := make([]int, 0, len(spectrum))
	for k := range spectrum {
		counts = append(counts, k)
	}
	sort.Ints(counts)
	sx := make([]float64, len(counts))
	sy := make([]float64, len(counts))
	for i, k := range counts {
		sx[i] = math.Log10(float64(k))
		sy[i] = math.Log10(float64(spectrum[k]))
	}
	return p.charts.Line(FileSpectrumChart, "Frequency Spectrum",
		"log10(occurrences)", "log10(word types)", sx, sy)
}

// Model rebuilds the lexical model from the token file without writing any
// artifacts. The predict command uses this for its in-memory lookups.
func (p *Pipeline) Model() (*lexmodel.Model, error) {
	tokens, err := p.readTokens()
	if err != nil {
		return nil, err
	}
	blacklist, err := lexmodel.LoadBlacklist(p.cfg.Lexicon.BlacklistPath)
	if err != nil {
		return nil, err
	}
	builder := lexmodel.NewBuilder(blacklist, p.cfg.Lexicon.MinFrequency, p.cfg.Lexicon.MaxWords)
	return builder.Build(tokens)
}

// BuildLexicalModel builds the lexical model and writes the keyboard wordlist
// and the n-gram language model artifacts.
func (p *Pipeline) BuildLexicalModel() error {
	m, err := p.Model()
	if err != nil {
		return err
	}

	if err := p.render.WriteJSON(FileLexicalModel, m); err != nil {
		return err
	}
	if err := p.render.WriteText(FileLexicalTop, p.render.TopWordsText(m.Words, 1000)); err != nil {
		return err
	}
	if err := p.render.WriteText(FileWordFreqs, p.render.WordFrequenciesText(m)); err != nil {
		return err
	}
	if err := p.render.WriteText(FileWordlist, p.render.WordlistTSV(m.Words)); err != nil {
		return err
	}
	if err := p.render.WriteJSON(FileBigramsJSON, m.Bigrams); err != nil {
		return err
	}
	if err := p.render.WriteText(FileBigramsText, p.render.BigramsText(m)); err != nil {
		return err
	}
	if err := p.render.WriteText(FileTrigramsText, p.render.TrigramsText(m.TrigramTable)); err != nil {
		return err
	}

	p.logf("✓ lexical model: %d words kept (%.1f%% corpus coverage), %d removed by blacklist\n",
		m.UniqueWords, m.Coverage, m.Cleaning.RemovedWords)
	return nil
}

// Run executes every stage in order against a dump, then verifies that all
// expected artifacts exist and are non-empty.
func (p *Pipeline) Run(dumpPath string) error {
	stages := []struct {
		name string
		fn   func() error
	}{
		{"extraction", func() error { return p.Extract(dumpPath) }},
		{"character analysis", p.AnalyzeCharacters},
		{"word analysis", p.AnalyzeWords},
		{"lexical model", p.BuildLexicalModel},
	}

	for i, stage := range stages {
		p.logf("═══ stage %d/%d: %s ═══\n", i+1, len(stages), stage.name)
		if err := stage.fn(); err != nil {
			return fmt.Errorf("%s: %w", stage.name, err)
		}
	}

	v := validate.NewValidator(p.cfg.Output.Dir)
	if err := v.RequireAll(AllOutputs(p.cfg.Output.Charts)); err != nil {
		return err
	}
	p.logf("✓ all %d expected outputs verified\n", len(AllOutputs(p.cfg.Output.Charts)))
	return nil
}

func (p *Pipeline) readCharacterStream() (string, error) {
	data, err := os.ReadFile(p.render.path(FileCharacters))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s (run the extraction stage first)",
				model.ErrInputNotFound, FileCharacters)
		}
		return "", fmt.Errorf("read character stream: %w", err)
	}
	return string(data), nil
}

func (p *Pipeline) readWordTable() (*model.FrequencyTable, error) {
	f, err := p.openTokens()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counter, err := freq.CountWords(f)
	if err != nil {
		return nil, err
	}
	return counter.Table(), nil
}

func (p *Pipeline) readTokens() ([]string, error) {
	f, err := p.openTokens()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			tokens = append(tokens, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return tokens, nil
}

func (p *Pipeline) openTokens() (*os.File, error) {
	f, err := os.Open(p.render.path(FileTokens))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run the extraction stage first)",
				model.ErrInputNotFound, FileTokens)
		}
		return nil, fmt.Errorf("open tokens: %w", err)
	}
	return f, nil
}
