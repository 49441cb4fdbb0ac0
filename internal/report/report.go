// Package report renders the aggregation results as human-readable text: a
// bucket listing, data-quality warnings, the averages table and a
// proportional bar chart.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KineticBytes/goldenage-cli/internal/aggregate"
	"github.com/KineticBytes/goldenage-cli/internal/cleaning"
	"github.com/KineticBytes/goldenage-cli/internal/dataset"
)

const barChar = "█"

// Options controls presentation only; nothing here affects the numbers.
type Options struct {
	// ChartWidth is the bar length of the largest average, in characters.
	ChartWidth int
	// Styled selects rounded table borders; use plain ASCII when the
	// output is piped.
	Styled bool
}

// DefaultOptions matches the analysis the tool ships for.
func DefaultOptions() Options {
	return Options{ChartWidth: 40, Styled: true}
}

// Render produces the full report for one aggregation pass.
func Render(res aggregate.Result, stats cleaning.Stats, opt Options) string {
	if opt.ChartWidth <= 0 {
		opt.ChartWidth = 40
	}
	var b strings.Builder

	b.WriteString("[CLEANING]\n")
	fmt.Fprintf(&b, "rows in: %s\n", comma(stats.InputRows))
	fmt.Fprintf(&b, "dropped incomplete: %s\n", comma(stats.IncompleteDropped))
	fmt.Fprintf(&b, "dropped duplicates: %s\n", comma(stats.DuplicatesDropped))
	fmt.Fprintf(&b, "categories canonicalized: %s\n", comma(stats.Canonicalized))
	fmt.Fprintf(&b, "rows out: %s\n", comma(stats.OutputRows))

	b.WriteString("\n[RATING BUCKETS]\n")
	if len(res.Buckets) == 0 {
		b.WriteString("(no rows matched the filter)\n")
	}
	for _, bk := range res.Buckets {
		fmt.Fprintf(&b, "rating %d: %s rows, %s distinct titles", bk.Rating, comma(bk.Rows), comma(bk.DistinctTitles))
		if !bk.Reliable {
			b.WriteString(" (below reliability threshold)")
		}
		b.WriteString("\n")
	}

	warnings := Warnings(res, stats)
	if len(warnings) > 0 {
		b.WriteString("\n[WARNINGS]\n")
		for _, w := range warnings {
			b.WriteString("⚠ ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[AVERAGE VOTES BY RATING]\n")
	if len(res.Averages) == 0 {
		b.WriteString("(no reliable buckets in the rating window)\n")
		return b.String()
	}
	b.WriteString(averagesTable(res.Averages, opt.Styled))
	b.WriteString("\n\n[VOTE DISTRIBUTION]\n")
	b.WriteString(barChart(res.Averages, opt.ChartWidth))
	return b.String()
}

// Warnings lists the non-fatal data-quality findings: in-window buckets too
// thin to report and category spellings outside the known set.
func Warnings(res aggregate.Result, stats cleaning.Stats) []string {
	var out []string
	for _, bk := range res.Excluded {
		out = append(out, fmt.Sprintf("rating %d has only %d distinct titles; excluded from averages", bk.Rating, bk.DistinctTitles))
	}
	for _, vc := range stats.UnknownCategoryList() {
		out = append(out, fmt.Sprintf("unrecognized category %q on %d rows; passed through unchanged", vc.Value, vc.Count))
	}
	return out
}

func averagesTable(avgs []aggregate.ScoreAverage, styled bool) string {
	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"RATING", "AVG VOTES"})
	for _, a := range avgs {
		tw.AppendRow(table.Row{a.Rating, comma(a.AvgVotes)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// barChart scales each bar to averageVotes/max(averageVotes) of the chart
// width, so the largest average always spans the full width.
func barChart(avgs []aggregate.ScoreAverage, width int) string {
	maxVotes := 0
	for _, a := range avgs {
		if a.AvgVotes > maxVotes {
			maxVotes = a.AvgVotes
		}
	}
	var b strings.Builder
	for _, a := range avgs {
		n := 0
		if maxVotes > 0 {
			n = int(float64(a.AvgVotes) / float64(maxVotes) * float64(width))
		}
		fmt.Fprintf(&b, "rating %d: %s %s votes\n", a.Rating, strings.Repeat(barChar, n), comma(a.AvgVotes))
	}
	return b.String()
}

// Overview renders the pre-cleaning dataset snapshot.
func Overview(ov dataset.Overview) string {
	var b strings.Builder
	b.WriteString("[DATASET OVERVIEW]\n")
	fmt.Fprintf(&b, "Rows: %s\n", comma(ov.Rows))
	fmt.Fprintf(&b, "Columns: %d\n", len(ov.Columns))
	b.WriteString("\n[COLUMNS]\n")
	for _, c := range ov.Columns {
		pct := 0.0
		if ov.Rows > 0 {
			pct = float64(c.Missing) * 100.0 / float64(ov.Rows)
		}
		fmt.Fprintf(&b, "- %s: non-null %s, missing %s (%.1f%%)\n", c.Name, comma(c.NonNull), comma(c.Missing), pct)
	}
	if len(ov.Categories) > 0 {
		b.WriteString("\n[RAW CATEGORY VALUES]\n")
		for _, vc := range ov.Categories {
			fmt.Fprintf(&b, "- %q: %s rows\n", vc.Value, comma(vc.Count))
		}
	}
	return b.String()
}

// comma formats n with thousands separators, the way the vote counts are
// meant to be read.
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}
