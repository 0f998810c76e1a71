package cli

import (
	"fmt"

	"korpus/internal/pipeline"

	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <dump.xml[.bz2]>",
	Short: "Extract and clean articles from a Wikipedia XML dump",
	Long: `Extract streams a Wikipedia XML dump, skips non-article pages, strips
wiki markup, and writes the tokenized corpus:
- one word token per line (tokens_preprocessed.txt)
- the character stream for character analysis (characters_preprocessed.txt)
- extraction statistics, per-article metadata, and a summary report

Example:
  korpus extract csbwiki-latest-pages-articles.xml.bz2
  korpus extract dump.xml --out ./results -v`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if err := p.Extract(args[0]); err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	return nil
}
