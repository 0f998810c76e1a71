package cli

import (
	"fmt"

	"korpus/internal/model"
	"korpus/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	minFrequency  int
	maxWords      int
	blacklistPath string
)

// lexmodelCmd represents the lexmodel command
var lexmodelCmd = &cobra.Command{
	Use:   "lexmodel",
	Short: "Build the cleaned wordlist and n-gram language models",
	Long: `Lexmodel filters the token sequence through the blacklist (whitelist
entries always survive), applies the frequency threshold and size cap,
and writes the keyboard wordlist plus bigram and trigram models.

Requires a prior extract run in the same output directory.

Example:
  korpus lexmodel
  korpus lexmodel --min-frequency 3 --max-words 30000
  korpus lexmodel --blacklist ./my-blacklist.yaml`,
	Args: cobra.NoArgs,
	RunE: runLexmodel,
}

func init() {
	rootCmd.AddCommand(lexmodelCmd)

	lexmodelCmd.Flags().IntVar(&minFrequency, "min-frequency", 0, "drop words below this count (default: 2)")
	lexmodelCmd.Flags().IntVar(&maxWords, "max-words", 0, "cap on wordlist size (default: 50000)")
	lexmodelCmd.Flags().StringVar(&blacklistPath, "blacklist", "", "YAML blacklist file (default: built-in Kashubian list)")
}

func runLexmodel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyLexiconFlags(cfg)

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if err := p.BuildLexicalModel(); err != nil {
		return fmt.Errorf("lexical model failed: %w", err)
	}
	return nil
}

func applyLexiconFlags(cfg *model.Config) {
	if minFrequency > 0 {
		cfg.Lexicon.MinFrequency = minFrequency
	}
	if maxWords > 0 {
		cfg.Lexicon.MaxWords = maxWords
	}
	if blacklistPath != "" {
		cfg.Lexicon.BlacklistPath = blacklistPath
	}
}
