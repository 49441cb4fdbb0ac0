package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KineticBytes/goldenage-cli/internal/runs"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List or display persisted analysis runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		all, err := runs.List(c.RunsDir)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No saved runs")
			return nil
		}
		for _, r := range all {
			fmt.Printf("%s  %s  %s  (year >= %d, %s, ratings %d-%d)\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Dataset,
				r.Params.MinYear, r.Params.Category, r.Params.RatingLow, r.Params.RatingHigh)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored report of a saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		text, err := runs.Report(c.RunsDir, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
