// Package cleaning turns the raw record set into the table the aggregation
// stage assumes: no missing rating or vote count, no exact duplicates, one
// canonical spelling per category. Each step is a pure transformation over
// the full slice so the stages can be tested in isolation.
package cleaning

import (
	"sort"
	"strings"

	"github.com/KineticBytes/goldenage-cli/internal/dataset"
)

// CanonicalShow is the label every TV-show spelling variant collapses into.
const CanonicalShow = "SHOW"

// showVariants holds the known spelling variants of the show category,
// lower-cased. Values outside this set pass through Canonicalize unchanged;
// unexpected spellings are tallied rather than silently absorbed.
var showVariants = map[string]struct{}{
	"show":      {},
	"shows":     {},
	"tv show":   {},
	"tv shows":  {},
	"tv series": {},
	"tv":        {},
}

// knownCategories are canonical values that legitimately pass through
// untouched.
var knownCategories = map[string]struct{}{
	CanonicalShow: {},
	"MOVIE":       {},
}

// Stats reports what each cleaning step did, mirroring the per-step counts
// the analysis expects to surface.
type Stats struct {
	InputRows         int            `json:"input_rows"`
	IncompleteDropped int            `json:"incomplete_dropped"`
	DuplicatesDropped int            `json:"duplicates_dropped"`
	Canonicalized     int            `json:"canonicalized"`
	UnknownCategories map[string]int `json:"unknown_categories,omitempty"`
	OutputRows        int            `json:"output_rows"`
}

// UnknownCategoryList returns the unexpected category spellings sorted by
// frequency (ties by value) for stable reporting.
func (s Stats) UnknownCategoryList() []dataset.ValueCount {
	out := make([]dataset.ValueCount, 0, len(s.UnknownCategories))
	for v, n := range s.UnknownCategories {
		out = append(out, dataset.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// Clean runs the three steps in their required order: incomplete rows first
// (duplicates of a dropped row must not survive dedup), then exact
// duplicates, then category canonicalization.
func Clean(recs []dataset.Record) ([]dataset.Record, Stats) {
	stats := Stats{InputRows: len(recs)}
	recs, stats.IncompleteDropped = DropIncomplete(recs)
	recs, stats.DuplicatesDropped = Dedupe(recs)
	recs, stats.Canonicalized, stats.UnknownCategories = Canonicalize(recs)
	stats.OutputRows = len(recs)
	return recs, stats
}

// DropIncomplete removes rows missing a rating or a vote count. Both fields
// feed the aggregation; no imputation is attempted at the source's ~5% loss.
func DropIncomplete(recs []dataset.Record) ([]dataset.Record, int) {
	out := make([]dataset.Record, 0, len(recs))
	for _, r := range recs {
		if !r.HasRating || !r.HasVotes {
			continue
		}
		out = append(out, r)
	}
	return out, len(recs) - len(out)
}

// Dedupe removes rows identical across every field, keeping the first
// occurrence. Record is a comparable struct, so identity is full-row.
func Dedupe(recs []dataset.Record) ([]dataset.Record, int) {
	seen := make(map[dataset.Record]struct{}, len(recs))
	out := make([]dataset.Record, 0, len(recs))
	for _, r := range recs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out, len(recs) - len(out)
}

// Canonicalize collapses the known show spelling variants into
// CanonicalShow. Any other value passes through unchanged; values outside
// the known set are counted so the report can flag them instead of letting
// them pollute results silently. Idempotent: canonical labels are not
// variants of anything.
func Canonicalize(recs []dataset.Record) ([]dataset.Record, int, map[string]int) {
	out := make([]dataset.Record, len(recs))
	changed := 0
	var unknown map[string]int
	for i, r := range recs {
		if _, ok := showVariants[strings.ToLower(r.Category)]; ok {
			if r.Category != CanonicalShow {
				r.Category = CanonicalShow
				changed++
			}
		} else if _, ok := knownCategories[r.Category]; !ok {
			if unknown == nil {
				unknown = make(map[string]int)
			}
			unknown[r.Category]++
		}
		out[i] = r
	}
	return out, changed, unknown
}
