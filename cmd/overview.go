package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KineticBytes/goldenage-cli/internal/dataset"
	"github.com/KineticBytes/goldenage-cli/internal/report"
	"github.com/KineticBytes/goldenage-cli/internal/schema"
)

var ovDelimiter string

var overviewCmd = &cobra.Command{
	Use:   "overview <file>",
	Short: "Show a pre-cleaning quality snapshot of the dataset",
	Long: `overview loads the dataset and normalizes its headers, then prints row
and column counts, per-column missing values and the raw category spellings
without cleaning anything. Useful for judging loss before an analyze run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		delimSpec := c.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delimSpec = ovDelimiter
		}
		delim, err := parseDelimiter(delimSpec)
		if err != nil {
			return err
		}
		tbl, err := dataset.Load(args[0], delim)
		if err != nil {
			return err
		}
		tbl.Headers = schema.Normalize(tbl.Headers)
		fmt.Println(report.Overview(dataset.Summarize(tbl)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab'")
}
