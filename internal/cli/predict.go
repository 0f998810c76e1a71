package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"korpus/internal/pipeline"
	"korpus/internal/predict"

	"github.com/spf13/cobra"
)

var suggestions int

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Interactive prefix-completion and next-word lookup",
	Long: `Predict rebuilds the lexical model from the extracted token file and
answers keyboard-style queries on stdin, one per line:
- a word prefix completes against the wordlist (descending frequency)
- "word +" suggests the most likely following words from the bigram model

Requires a prior extract run in the same output directory.

Example:
  korpus predict
  > kasz
  > w +`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().IntVarP(&suggestions, "suggestions", "n", 5, "suggestions per query")
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Building lexical model from %s...\n", cfg.Output.Dir)
	}
	m, err := p.Model()
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	predictor := predict.New(m)

	fmt.Printf("Loaded %d words. Type a prefix, or \"word +\" for next-word suggestions. Ctrl-D exits.\n",
		m.UniqueWords)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		var results []predict.Suggestion
		if prev, ok := strings.CutSuffix(query, "+"); ok {
			results = predictor.NextWord(strings.TrimSpace(prev), suggestions)
		} else {
			results = predictor.Complete(query, suggestions)
		}

		if len(results) == 0 {
			fmt.Println("  (no suggestions)")
			continue
		}
		for i, s := range results {
			fmt.Printf("  %d. %-20s %6d  %.6f\n", i+1, s.Word, s.Count, s.Probability)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Println()
	return nil
}
