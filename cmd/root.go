package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KineticBytes/goldenage-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper at load time)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "goldenage",
	Short: "Golden Age CLI: clean a movies-and-shows table and relate ratings to votes",
	Long: `goldenage loads a delimited movies-and-shows dataset, normalizes its
malformed headers, cleans it (missing values, duplicates, category spelling
variants) and reports the average vote count per rounded rating for TV shows
released in the Golden Age window.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.goldenage/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config or built-in defaults so commands
// stay runnable when the config never loaded (e.g. in tests).
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		Delimiter:            ",",
		MinYear:              1999,
		TargetCategory:       "SHOW",
		RatingLow:            4,
		RatingHigh:           9,
		ReliabilityThreshold: 30,
		ChartWidth:           40,
	}
}
