package model

// Config holds the complete pipeline configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Language LanguageConfig `mapstructure:"language" yaml:"language"`
	Markup   MarkupConfig   `mapstructure:"markup" yaml:"markup"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Lexicon  LexiconConfig  `mapstructure:"lexicon" yaml:"lexicon"`
}

// OutputConfig controls where and how artifacts are written
type OutputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`         // Output directory for all artifacts
	TopN    int    `mapstructure:"top_n" yaml:"top_n"`     // How many symbols to show in tables and charts
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"` // Progress output to stderr
	Charts  bool   `mapstructure:"charts" yaml:"charts"`   // Render PNG charts
}

// LanguageConfig describes the target language profile.
// The defaults cover Kashubian (csb); other minority languages only need a
// different alphabet and diacritic list here, not code changes.
type LanguageConfig struct {
	Code       string      `mapstructure:"code" yaml:"code"`               // ISO 639 code
	Name       string      `mapstructure:"name" yaml:"name"`               // Display name
	Letters    string      `mapstructure:"letters" yaml:"letters"`         // Lowercase alphabet, one rune per letter
	Diacritics []Diacritic `mapstructure:"diacritics" yaml:"diacritics"`   // Language-specific diacritic letters
	Digraphs   []string    `mapstructure:"digraphs" yaml:"digraphs"`       // Phonemic two-letter combinations
	Stopwords  []string    `mapstructure:"stopwords" yaml:"stopwords"`     // Function words, kept in the corpus but reported separately
	MetaTitles []string    `mapstructure:"meta_titles" yaml:"meta_titles"` // Title prefixes of non-article pages to skip
}

// Diacritic names a diacritic letter for reporting
type Diacritic struct {
	Char        string `mapstructure:"char" yaml:"char"`
	Description string `mapstructure:"description" yaml:"description"`
}

// MarkupConfig lists the wiki-syntax strip rules applied during extraction.
// The rules are heuristic and corpus-dependent, so they live in configuration
// rather than code.
type MarkupConfig struct {
	Rules []MarkupRule `mapstructure:"rules" yaml:"rules"`
}

// MarkupRule is a single regex replacement applied to raw article text
type MarkupRule struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	Replace string `mapstructure:"replace" yaml:"replace"`
}

// AnalysisConfig controls the statistical analysis stage
type AnalysisConfig struct {
	CoverageCheckpoints []int     `mapstructure:"coverage_checkpoints" yaml:"coverage_checkpoints"` // Vocabulary sizes to evaluate coverage at
	CoverageTargets     []float64 `mapstructure:"coverage_targets" yaml:"coverage_targets"`         // Coverage percentages to find vocabulary sizes for
	ZipfThreshold       float64   `mapstructure:"zipf_threshold" yaml:"zipf_threshold"`             // Correlation at or below this confirms a Zipfian distribution
	ZipfTopRanks        int       `mapstructure:"zipf_top_ranks" yaml:"zipf_top_ranks"`             // Ranks used for the Zipf constant statistics
}

// LexiconConfig controls the lexical model builder
type LexiconConfig struct {
	MinFrequency  int    `mapstructure:"min_frequency" yaml:"min_frequency"`   // Words below this count are dropped
	MaxWords      int    `mapstructure:"max_words" yaml:"max_words"`           // Cap on wordlist size
	BlacklistPath string `mapstructure:"blacklist_path" yaml:"blacklist_path"` // Optional YAML blacklist file; empty uses the built-in list
}

// DefaultConfig returns the default configuration for the Kashubian corpus
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "./results",
			TopN:   20,
			Charts: true,
		},
		Language: LanguageConfig{
			Code:    "csb",
			Name:    "Kashubian",
			Letters: "aąãbcćdeęéëfghijklłmnńoòóôprsśtuùvwyzźż",
			Diacritics: []Diacritic{
				{Char: "ą", Description: "a with ogonek"},
				{Char: "ã", Description: "a with tilde"},
				{Char: "é", Description: "e with acute"},
				{Char: "ë", Description: "e with diaeresis"},
				{Char: "ń", Description: "n with acute"},
				{Char: "ò", Description: "o with grave"},
				{Char: "ó", Description: "o with acute"},
				{Char: "ô", Description: "o with circumflex"},
				{Char: "ù", Description: "u with grave"},
				{Char: "ł", Description: "l with stroke"},
				{Char: "ż", Description: "z with dot above"},
			},
			Digraphs: []string{"ch", "cz", "dz", "dż", "rz", "sz"},
			Stopwords: []string{
				"w", "i", "na", "z", "do", "o", "a", "je", "to", "że", "się",
				"ale", "jak", "co", "ten", "być", "przez", "dla", "są", "był",
				"jako", "oraz", "jego", "jej", "nich", "też", "tylko", "już",
			},
			MetaTitles: []string{
				"wikipedia:", "talk:", "user:", "file:", "template:",
				"kategòrëjô:", "òbrôzk:",
			},
		},
		Markup: MarkupConfig{
			Rules: DefaultMarkupRules(),
		},
		Analysis: AnalysisConfig{
			CoverageCheckpoints: []int{100, 500, 1000, 2000, 5000, 10000, 20000, 50000},
			CoverageTargets:     []float64{80, 90, 95, 99},
			ZipfThreshold:       -0.85,
			ZipfTopRanks:        1000,
		},
		Lexicon: LexiconConfig{
			MinFrequency: 2,
			MaxWords:     50000,
		},
	}
}

// DefaultMarkupRules returns the built-in wiki-syntax strip rules.
// Order matters: piped links must be unwrapped before plain links.
func DefaultMarkupRules() []MarkupRule {
	return []MarkupRule{
		{Name: "templates", Pattern: `\{\{[^}]*\}\}`, Replace: ""},
		{Name: "references", Pattern: `(?s)<ref[^>]*>.*?</ref>`, Replace: ""},
		{Name: "empty_references", Pattern: `<ref[^>]*/>`, Replace: ""},
		{Name: "file_links", Pattern: `(?i)\[\[(File|Image|Òbrôzk):[^\]]*\]\]`, Replace: ""},
		{Name: "category_links", Pattern: `(?i)\[\[(Category|Kategòrëjô):[^\]]*\]\]`, Replace: ""},
		{Name: "piped_links", Pattern: `\[\[[^\]|]*\|([^\]]+)\]\]`, Replace: "$1"},
		{Name: "plain_links", Pattern: `\[\[([^\]]+)\]\]`, Replace: "$1"},
		{Name: "external_links", Pattern: `\[http[^\]]*\]`, Replace: ""},
		{Name: "bold", Pattern: `'''([^']+)'''`, Replace: "$1"},
		{Name: "italic", Pattern: `''([^']+)''`, Replace: "$1"},
		{Name: "headings", Pattern: `={2,}[^=]+={2,}`, Replace: ""},
	}
}
