package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one row of the source table bound to the canonical schema.
// Rating and Votes are blank for roughly 5% of source rows, so each carries
// a presence flag instead of a sentinel value.
type Record struct {
	Name        string
	Character   string
	Role        string
	Title       string
	Category    string
	Genres      string
	ReleaseYear int
	Rating      float64
	HasRating   bool
	Votes       float64
	HasVotes    bool
}

// Table is the raw in-memory table as loaded from disk: a header row and
// string cells. Headers are expected to be normalized (see internal/schema)
// before calling Records.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// requiredColumns are the canonical columns Records cannot bind without.
var requiredColumns = []string{"title", "type", "release_year", "imdb_score", "imdb_votes"}

// Records binds the table to the canonical schema. release_year must parse
// on every row; imdb_score and imdb_votes may be blank (missing) but a
// non-empty cell that does not parse is a ParseError.
func (t *Table) Records() ([]Record, error) {
	idx := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		idx[h] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q after header normalization", name)
		}
	}
	recs := make([]Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2 // 1-based, after the header row
		rec := Record{
			Name:      cell(row, idx, "name"),
			Character: cell(row, idx, "character"),
			Role:      cell(row, idx, "role"),
			Title:     cell(row, idx, "title"),
			Category:  cell(row, idx, "type"),
			Genres:    cell(row, idx, "genres"),
		}
		year, err := strconv.Atoi(strings.TrimSpace(cell(row, idx, "release_year")))
		if err != nil {
			return nil, &ParseError{Row: line, Err: fmt.Errorf("release_year: %w", err)}
		}
		rec.ReleaseYear = year
		rec.Rating, rec.HasRating, err = optionalFloat(cell(row, idx, "imdb_score"))
		if err != nil {
			return nil, &ParseError{Row: line, Err: fmt.Errorf("imdb_score: %w", err)}
		}
		rec.Votes, rec.HasVotes, err = optionalFloat(cell(row, idx, "imdb_votes"))
		if err != nil {
			return nil, &ParseError{Row: line, Err: fmt.Errorf("imdb_votes: %w", err)}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func optionalFloat(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}
