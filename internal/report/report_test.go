package report_test

import (
	"strings"
	"testing"

	"github.com/KineticBytes/goldenage-cli/internal/aggregate"
	"github.com/KineticBytes/goldenage-cli/internal/cleaning"
	"github.com/KineticBytes/goldenage-cli/internal/dataset"
	"github.com/KineticBytes/goldenage-cli/internal/report"
)

func sampleResult() aggregate.Result {
	return aggregate.Result{
		Buckets: []aggregate.Bucket{
			{Rating: 5, Rows: 3, DistinctTitles: 1, Reliable: false},
			{Rating: 8, Rows: 40, DistinctTitles: 35, Reliable: true},
			{Rating: 9, Rows: 50, DistinctTitles: 45, Reliable: true},
		},
		Averages: []aggregate.ScoreAverage{
			{Rating: 9, AvgVotes: 126667},
			{Rating: 8, AvgVotes: 30000},
		},
		Excluded: []aggregate.Bucket{
			{Rating: 5, Rows: 3, DistinctTitles: 1, Reliable: false},
		},
	}
}

func TestRenderSections(t *testing.T) {
	out := report.Render(sampleResult(), cleaning.Stats{InputRows: 100, OutputRows: 93}, report.DefaultOptions())
	for _, want := range []string{
		"[CLEANING]",
		"[RATING BUCKETS]",
		"rating 5: 3 rows, 1 distinct titles (below reliability threshold)",
		"[WARNINGS]",
		"⚠ rating 5 has only 1 distinct titles; excluded from averages",
		"[AVERAGE VOTES BY RATING]",
		"126,667",
		"[VOTE DISTRIBUTION]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBarChartProportions(t *testing.T) {
	out := report.Render(sampleResult(), cleaning.Stats{}, report.Options{ChartWidth: 40})
	var maxBar, smallBar int
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "rating 9: █"):
			maxBar = strings.Count(line, "█")
		case strings.HasPrefix(line, "rating 8: █"):
			smallBar = strings.Count(line, "█")
		}
	}
	if maxBar != 40 {
		t.Fatalf("largest average must span the full width, got %d", maxBar)
	}
	// 30000/126667 of 40 chars truncates to 9.
	if smallBar != 9 {
		t.Fatalf("smaller bar = %d, want 9", smallBar)
	}
}

func TestRenderUnknownCategoryWarning(t *testing.T) {
	stats := cleaning.Stats{UnknownCategories: map[string]int{"the movie": 3}}
	out := report.Render(sampleResult(), stats, report.DefaultOptions())
	if !strings.Contains(out, `unrecognized category "the movie" on 3 rows`) {
		t.Fatalf("missing unknown-category warning:\n%s", out)
	}
}

func TestRenderEmptyResult(t *testing.T) {
	out := report.Render(aggregate.Result{}, cleaning.Stats{}, report.DefaultOptions())
	if !strings.Contains(out, "(no rows matched the filter)") {
		t.Fatalf("missing empty bucket note:\n%s", out)
	}
	if !strings.Contains(out, "(no reliable buckets in the rating window)") {
		t.Fatalf("missing empty averages note:\n%s", out)
	}
}

func TestOverviewRendering(t *testing.T) {
	ov := dataset.Overview{
		Rows: 4,
		Columns: []dataset.ColumnOverview{
			{Name: "title", NonNull: 4},
			{Name: "imdb_score", NonNull: 3, Missing: 1},
		},
		Categories: []dataset.ValueCount{{Value: "SHOW", Count: 2}, {Value: "tv show", Count: 1}},
	}
	out := report.Overview(ov)
	for _, want := range []string{
		"[DATASET OVERVIEW]",
		"Rows: 4",
		"- imdb_score: non-null 3, missing 1 (25.0%)",
		`- "tv show": 1 rows`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("overview missing %q:\n%s", want, out)
		}
	}
}
