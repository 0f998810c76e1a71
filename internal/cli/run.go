package cli

import (
	"fmt"

	"korpus/internal/pipeline"

	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <dump.xml[.bz2]>",
	Short: "Run the complete pipeline: extract, chars, words, lexmodel",
	Long: `Run executes every stage in order against a Wikipedia XML dump and then
verifies that all expected output files exist and are non-empty, exiting
non-zero if any artifact is missing.

Example:
  korpus run csbwiki-latest-pages-articles.xml.bz2
  korpus run dump.xml --out ./results -v`,
	Args: cobra.ExactArgs(1),
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&minFrequency, "min-frequency", 0, "drop words below this count (default: 2)")
	runCmd.Flags().IntVar(&maxWords, "max-words", 0, "cap on wordlist size (default: 50000)")
	runCmd.Flags().StringVar(&blacklistPath, "blacklist", "", "YAML blacklist file (default: built-in Kashubian list)")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyLexiconFlags(cfg)

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if err := p.Run(args[0]); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Printf("✓ Pipeline complete: %s\n", cfg.Output.Dir)
	return nil
}
