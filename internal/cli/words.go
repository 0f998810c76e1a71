package cli

import (
	"fmt"

	"korpus/internal/pipeline"

	"github.com/spf13/cobra"
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Analyze word frequencies, Zipf fit, and vocabulary coverage",
	Long: `Words builds the word frequency table from the extracted token file and
runs the statistical analyses over it:
- vocabulary quality metrics (type-token ratio, hapax legomena)
- Zipf's law validation via log-log rank-frequency regression
- cumulative coverage curve with target vocabulary sizes

Requires a prior extract run in the same output directory.

Example:
  korpus words
  korpus words --out ./results -v`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if err := p.AnalyzeWords(); err != nil {
		return fmt.Errorf("word analysis failed: %w", err)
	}
	return nil
}
