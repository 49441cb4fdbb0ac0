package dataset_test

import (
	"testing"

	"github.com/KineticBytes/goldenage-cli/internal/dataset"
)

func TestSummarize(t *testing.T) {
	tbl := &dataset.Table{
		Headers: []string{"title", "type", "imdb_score"},
		Rows: [][]string{
			{"A", "SHOW", "8.1"},
			{"B", "MOVIE", ""},
			{"C", "SHOW", "7.0"},
			{"D", "", "6.5"},
		},
	}
	ov := dataset.Summarize(tbl)
	if ov.Rows != 4 {
		t.Fatalf("Rows = %d, want 4", ov.Rows)
	}
	byName := map[string]dataset.ColumnOverview{}
	for _, c := range ov.Columns {
		byName[c.Name] = c
	}
	if got := byName["imdb_score"]; got.Missing != 1 || got.NonNull != 3 {
		t.Fatalf("imdb_score overview = %+v", got)
	}
	if got := byName["type"]; got.Missing != 1 {
		t.Fatalf("type overview = %+v", got)
	}
	if len(ov.Categories) != 2 || ov.Categories[0].Value != "SHOW" || ov.Categories[0].Count != 2 {
		t.Fatalf("Categories = %+v", ov.Categories)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	ov := dataset.Summarize(&dataset.Table{})
	if ov.Rows != 0 || len(ov.Columns) != 0 || len(ov.Categories) != 0 {
		t.Fatalf("expected empty overview, got %+v", ov)
	}
}
