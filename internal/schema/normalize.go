// Package schema renames the source table's malformed headers to canonical
// lowercase snake_case names.
package schema

// headerRenames maps every known malformed header in the source dataset to
// its canonical name. The upstream export mixes case, embeds whitespace and
// substitutes the digit 0 for the letter o. Headers outside this map pass
// through unchanged, so a new malformed variant upstream shows up as an
// unexpected column downstream instead of being cleaned here.
var headerRenames = map[string]string{
	"   name":      "name",
	"Character":    "character",
	"r0le":         "role",
	"TITLE":        "title",
	"  Type":       "type",
	"release Year": "release_year",
	"genres":       "genres",
	"imdb sc0re":   "imdb_score",
	"imdb v0tes":   "imdb_votes",
}

// Normalize returns a copy of headers with every known malformed name
// replaced by its canonical form. Idempotent: canonical names are not keys
// in the map and pass through untouched.
func Normalize(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		if canonical, ok := headerRenames[h]; ok {
			out[i] = canonical
			continue
		}
		out[i] = h
	}
	return out
}
