package cli

import (
	"fmt"
	"os"

	"korpus/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	outDir  string
	topN    int
	charts  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "korpus",
	Short: "Korpus - corpus statistics for minority-language Wikipedia dumps",
	Long: `Korpus turns a Wikipedia XML dump into the frequency data a keyboard or
predictive-text project needs: character, digraph, and trigraph tables,
word frequencies with Zipf and coverage analysis, and a cleaned wordlist
with bigram/trigram language models.

The defaults target the Kashubian (csb) Wikipedia; other languages only
need a different alphabet and diacritic list in the configuration.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("korpus v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.korpus/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory (default: ./results)")
	rootCmd.PersistentFlags().IntVar(&topN, "top", 0, "rows to show in tables and charts (default: 20)")
	rootCmd.PersistentFlags().BoolVar(&charts, "charts", true, "render PNG charts")

	// Bind flags to viper. The --out flag is overlaid manually in loadConfig:
	// binding it here would make its empty default clobber the configured
	// directory during Unmarshal.
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.korpus")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match KORPUS_*
	viper.SetEnvPrefix("KORPUS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults, overlaid by the
// config file and environment, overlaid by flags
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	cfg.Output.Verbose = verbose
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if topN > 0 {
		cfg.Output.TopN = topN
	}
	if rootCmd.PersistentFlags().Changed("charts") {
		cfg.Output.Charts = charts
	}
	return cfg, nil
}
