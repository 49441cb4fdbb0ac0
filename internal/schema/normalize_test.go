package schema_test

import (
	"reflect"
	"testing"

	"github.com/KineticBytes/goldenage-cli/internal/schema"
)

func TestNormalizeKnownHeaders(t *testing.T) {
	in := []string{"   name", "Character", "r0le", "TITLE", "  Type", "release Year", "genres", "imdb sc0re", "imdb v0tes"}
	want := []string{"name", "character", "role", "title", "type", "release_year", "genres", "imdb_score", "imdb_votes"}
	got := schema.Normalize(in)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeUnknownHeaderPassesThrough(t *testing.T) {
	got := schema.Normalize([]string{"TITLE", "imdb sc0re", "Unexpected C0lumn"})
	want := []string{"title", "imdb_score", "Unexpected C0lumn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := []string{"   name", "TITLE", "imdb v0tes"}
	once := schema.Normalize(in)
	twice := schema.Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second Normalize changed headers: %v vs %v", once, twice)
	}
}
