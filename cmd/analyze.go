package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KineticBytes/goldenage-cli/internal/aggregate"
	"github.com/KineticBytes/goldenage-cli/internal/cleaning"
	"github.com/KineticBytes/goldenage-cli/internal/dataset"
	"github.com/KineticBytes/goldenage-cli/internal/report"
	"github.com/KineticBytes/goldenage-cli/internal/runs"
	"github.com/KineticBytes/goldenage-cli/internal/schema"
)

var (
	anaOutputPath  string
	anaSave        bool
	anaDelimiter   string
	anaMinYear     int
	anaCategory    string
	anaRatingLow   int
	anaRatingHigh  int
	anaReliability int
	anaChartWidth  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Clean the dataset and report average votes per rounded rating",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		path := c.DatasetPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no input file: pass a path or set dataset_path in config")
		}

		delimSpec := c.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delimSpec = anaDelimiter
		}
		delim, err := parseDelimiter(delimSpec)
		if err != nil {
			return err
		}

		params := aggregate.Params{
			MinYear:              c.MinYear,
			Category:             c.TargetCategory,
			RatingLow:            c.RatingLow,
			RatingHigh:           c.RatingHigh,
			ReliabilityThreshold: c.ReliabilityThreshold,
		}
		if cmd.Flags().Changed("min-year") {
			params.MinYear = anaMinYear
		}
		if cmd.Flags().Changed("category") {
			params.Category = anaCategory
		}
		if cmd.Flags().Changed("rating-low") {
			params.RatingLow = anaRatingLow
		}
		if cmd.Flags().Changed("rating-high") {
			params.RatingHigh = anaRatingHigh
		}
		if params.RatingLow > params.RatingHigh {
			return fmt.Errorf("invalid rating window: low %d > high %d", params.RatingLow, params.RatingHigh)
		}
		if cmd.Flags().Changed("reliability-threshold") {
			params.ReliabilityThreshold = anaReliability
		}
		width := c.ChartWidth
		if cmd.Flags().Changed("chart-width") {
			width = anaChartWidth
		}

		// Pipeline: load, normalize headers, bind, clean, aggregate.
		tbl, err := dataset.Load(path, delim)
		if err != nil {
			return err
		}
		tbl.Headers = schema.Normalize(tbl.Headers)
		recs, err := tbl.Records()
		if err != nil {
			return err
		}
		cleaned, stats := cleaning.Clean(recs)
		res := aggregate.Run(cleaned, params)

		for _, w := range report.Warnings(res, stats) {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
		}

		styled := stdoutIsTTY() && anaOutputPath == ""
		text := report.Render(res, stats, report.Options{ChartWidth: width, Styled: styled})

		// Decide where to write: --output path, --save run, or stdout.
		written := false
		if anaOutputPath != "" {
			if err := os.WriteFile(anaOutputPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutputPath)
			written = true
		}
		if anaSave {
			run := &runs.Run{
				Dataset:  path,
				Params:   params,
				Stats:    stats,
				Averages: res.Averages,
			}
			id, err := runs.Save(c.RunsDir, run, text)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Saved run %s to %s\n", id, c.RunsDir)
			written = true
		}
		if !written {
			fmt.Println(text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().BoolVar(&anaSave, "save", false, "persist this run under the runs directory")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().IntVar(&anaMinYear, "min-year", 1999, "minimum release year, inclusive")
	analyzeCmd.Flags().StringVar(&anaCategory, "category", "SHOW", "canonical category to analyze")
	analyzeCmd.Flags().IntVar(&anaRatingLow, "rating-low", 4, "lowest rounded rating included in the averages")
	analyzeCmd.Flags().IntVar(&anaRatingHigh, "rating-high", 9, "highest rounded rating included in the averages")
	analyzeCmd.Flags().IntVar(&anaReliability, "reliability-threshold", 30, "minimum distinct titles for a bucket to be reported")
	analyzeCmd.Flags().IntVar(&anaChartWidth, "chart-width", 40, "bar chart width in characters")
}
