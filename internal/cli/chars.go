package cli

import (
	"fmt"

	"korpus/internal/pipeline"

	"github.com/spf13/cobra"
)

// charsCmd represents the chars command
var charsCmd = &cobra.Command{
	Use:   "chars",
	Short: "Analyze character, digraph, and trigraph frequencies",
	Long: `Chars reads the extracted character stream and produces the frequency
tables a keyboard layout is designed from: single characters with a
diacritic breakdown, digraphs with the language's phonemic units, and
trigraphs. Requires a prior extract run in the same output directory.

Example:
  korpus chars
  korpus chars --out ./results --top 30`,
	Args: cobra.NoArgs,
	RunE: runChars,
}

func init() {
	rootCmd.AddCommand(charsCmd)
}

func runChars(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if err := p.AnalyzeCharacters(); err != nil {
		return fmt.Errorf("character analysis failed: %w", err)
	}
	return nil
}
