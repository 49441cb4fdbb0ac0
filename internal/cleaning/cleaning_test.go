package cleaning_test

import (
	"reflect"
	"testing"

	"github.com/KineticBytes/goldenage-cli/internal/cleaning"
	"github.com/KineticBytes/goldenage-cli/internal/dataset"
)

func rec(title, category string, year int, rating, votes float64, hasRating, hasVotes bool) dataset.Record {
	return dataset.Record{
		Title:       title,
		Category:    category,
		ReleaseYear: year,
		Rating:      rating,
		HasRating:   hasRating,
		Votes:       votes,
		HasVotes:    hasVotes,
	}
}

func TestDropIncomplete(t *testing.T) {
	in := []dataset.Record{
		rec("A", "SHOW", 2000, 8, 100, true, true),
		rec("B", "SHOW", 2000, 0, 100, false, true),
		rec("C", "SHOW", 2000, 8, 0, true, false),
	}
	out, dropped := cleaning.DropIncomplete(in)
	if dropped != 2 || len(out) != 1 {
		t.Fatalf("dropped = %d, len = %d, want 2 and 1", dropped, len(out))
	}
	for _, r := range out {
		if !r.HasRating || !r.HasVotes {
			t.Fatalf("incomplete row survived: %+v", r)
		}
	}
}

func TestDedupeKeepsFirstAndIsIdempotent(t *testing.T) {
	a := rec("A", "SHOW", 2000, 8, 100, true, true)
	b := rec("B", "SHOW", 2001, 7, 50, true, true)
	in := []dataset.Record{a, b, a, a}
	once, dropped := cleaning.Dedupe(in)
	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
	if !reflect.DeepEqual(once, []dataset.Record{a, b}) {
		t.Fatalf("unexpected dedupe result: %+v", once)
	}
	twice, dropped := cleaning.Dedupe(once)
	if dropped != 0 || !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe not idempotent: dropped %d, %+v", dropped, twice)
	}
}

func TestCanonicalizeVariants(t *testing.T) {
	variants := []string{"shows", "SHOW", "tv show", "tv shows", "tv series", "tv", "Show", "TV SHOWS"}
	in := make([]dataset.Record, 0, len(variants))
	for _, v := range variants {
		in = append(in, rec("T", v, 2000, 8, 10, true, true))
	}
	out, changed, unknown := cleaning.Canonicalize(in)
	for _, r := range out {
		if r.Category != cleaning.CanonicalShow {
			t.Fatalf("variant not canonicalized: %+v", r)
		}
	}
	// "SHOW" is already canonical; every other spelling changes.
	if changed != len(variants)-1 {
		t.Fatalf("changed = %d, want %d", changed, len(variants)-1)
	}
	if len(unknown) != 0 {
		t.Fatalf("unexpected unknown categories: %v", unknown)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	in := []dataset.Record{
		rec("A", "tv shows", 2000, 8, 10, true, true),
		rec("B", "MOVIE", 2000, 8, 10, true, true),
	}
	once, _, _ := cleaning.Canonicalize(in)
	twice, changed, _ := cleaning.Canonicalize(once)
	if changed != 0 || !reflect.DeepEqual(once, twice) {
		t.Fatalf("canonicalize not idempotent: changed %d", changed)
	}
}

func TestCanonicalizeFlagsUnknownValues(t *testing.T) {
	in := []dataset.Record{
		rec("A", "MOVIE", 2000, 8, 10, true, true),
		rec("B", "the movie", 2000, 8, 10, true, true),
		rec("C", "the movie", 2001, 7, 10, true, true),
	}
	out, _, unknown := cleaning.Canonicalize(in)
	if unknown["the movie"] != 2 {
		t.Fatalf("unknown = %v, want map with \"the movie\": 2", unknown)
	}
	// Unknown values pass through unchanged rather than being absorbed.
	if out[1].Category != "the movie" {
		t.Fatalf("unknown value rewritten: %+v", out[1])
	}
}

func TestCleanPipeline(t *testing.T) {
	a := rec("A", "tv show", 2000, 8, 100, true, true)
	in := []dataset.Record{
		a,
		a, // exact duplicate
		rec("B", "shows", 2001, 0, 50, false, true), // missing rating
		rec("C", "MOVIE", 2002, 6, 25, true, true),
	}
	out, stats := cleaning.Clean(in)
	if stats.InputRows != 4 || stats.IncompleteDropped != 1 || stats.DuplicatesDropped != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.OutputRows != len(out) || len(out) != 2 {
		t.Fatalf("output rows = %d, stats %+v", len(out), stats)
	}
	if out[0].Category != cleaning.CanonicalShow {
		t.Fatalf("category not canonical after Clean: %+v", out[0])
	}
}
