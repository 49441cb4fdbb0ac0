package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KineticBytes/goldenage-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set goldenage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		if cfg.DatasetPath != "" {
			fmt.Printf("dataset_path: %s\n", cfg.DatasetPath)
		}
		fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		fmt.Printf("min_year: %d\n", cfg.MinYear)
		fmt.Printf("target_category: %s\n", cfg.TargetCategory)
		fmt.Printf("rating_low: %d\n", cfg.RatingLow)
		fmt.Printf("rating_high: %d\n", cfg.RatingHigh)
		fmt.Printf("reliability_threshold: %d\n", cfg.ReliabilityThreshold)
		fmt.Printf("chart_width: %d\n", cfg.ChartWidth)
		fmt.Printf("runs_dir: %s\n", cfg.RunsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset_path":
			cfg.DatasetPath = val
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "min_year":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for min_year: %v", val)
			}
			cfg.MinYear = i
		case "target_category":
			cfg.TargetCategory = val
		case "rating_low":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for rating_low: %v", val)
			}
			cfg.RatingLow = i
		case "rating_high":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for rating_high: %v", val)
			}
			cfg.RatingHigh = i
		case "reliability_threshold":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for reliability_threshold: %v", val)
			}
			cfg.ReliabilityThreshold = i
		case "chart_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for chart_width: %v", val)
			}
			cfg.ChartWidth = i
		case "runs_dir":
			cfg.RunsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
