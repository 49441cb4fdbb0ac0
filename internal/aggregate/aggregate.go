// Package aggregate computes the average vote count per rounded rating for
// records inside the analysis window (release year and category filter).
package aggregate

import (
	"math"
	"sort"

	"github.com/KineticBytes/goldenage-cli/internal/dataset"
)

// Params are the fixed inputs of one aggregation pass.
type Params struct {
	// MinYear is inclusive: rows released earlier are filtered out.
	MinYear int `json:"min_year"`
	// Category must match the record's category exactly (post-cleaning
	// the value is canonical).
	Category string `json:"category"`
	// RatingLow and RatingHigh bound (inclusive) the rounded-rating window
	// whose buckets feed the final averages.
	RatingLow  int `json:"rating_low"`
	RatingHigh int `json:"rating_high"`
	// ReliabilityThreshold is the minimum number of distinct titles a
	// bucket needs for its average to be reported. Buckets below it stay
	// in the bucket listing but are excluded from the averages.
	ReliabilityThreshold int `json:"reliability_threshold"`
}

// DefaultParams mirrors the analysis the tool was built for: the Golden Age
// window (1999 onward), canonical SHOW records, ratings 4-9, 30 titles.
func DefaultParams() Params {
	return Params{
		MinYear:              1999,
		Category:             "SHOW",
		RatingLow:            4,
		RatingHigh:           9,
		ReliabilityThreshold: 30,
	}
}

// Bucket is the per-rounded-rating tally used for the data-quality listing.
type Bucket struct {
	Rating         int
	Rows           int
	DistinctTitles int
	Reliable       bool
}

// ScoreAverage pairs a rounded rating with its mean vote count.
type ScoreAverage struct {
	Rating   int `json:"rating"`
	AvgVotes int `json:"avg_votes"`
}

// Result carries every bucket seen (ascending by rating), the averages for
// reliable in-window buckets (descending by average), and the in-window
// buckets that fell below the reliability threshold.
type Result struct {
	Buckets  []Bucket
	Averages []ScoreAverage
	Excluded []Bucket
}

// roundRating rounds a rating to its bucket with math.Round, which rounds
// halves away from zero: 7.5 buckets as 8 and 8.5 as 9.
func roundRating(r float64) int {
	return int(math.Round(r))
}

// Run filters, buckets and averages in one pass over the cleaned records.
// Deterministic for a given input: every output slice has a total order.
// Empty input yields an empty Result.
func Run(recs []dataset.Record, p Params) Result {
	type acc struct {
		rows   int
		titles map[string]struct{}
		sum    float64
		n      int
	}
	buckets := make(map[int]*acc)
	for _, r := range recs {
		if r.ReleaseYear < p.MinYear || r.Category != p.Category {
			continue
		}
		if !r.HasRating || !r.HasVotes {
			continue
		}
		key := roundRating(r.Rating)
		a := buckets[key]
		if a == nil {
			a = &acc{titles: make(map[string]struct{})}
			buckets[key] = a
		}
		a.rows++
		a.titles[r.Title] = struct{}{}
		a.sum += r.Votes
		a.n++
	}

	var res Result
	ratings := make([]int, 0, len(buckets))
	for k := range buckets {
		ratings = append(ratings, k)
	}
	sort.Ints(ratings)
	for _, k := range ratings {
		a := buckets[k]
		b := Bucket{
			Rating:         k,
			Rows:           a.rows,
			DistinctTitles: len(a.titles),
			Reliable:       len(a.titles) >= p.ReliabilityThreshold,
		}
		res.Buckets = append(res.Buckets, b)
		if k < p.RatingLow || k > p.RatingHigh {
			continue
		}
		if !b.Reliable {
			res.Excluded = append(res.Excluded, b)
			continue
		}
		res.Averages = append(res.Averages, ScoreAverage{
			Rating:   k,
			AvgVotes: int(math.Round(a.sum / float64(a.n))),
		})
	}
	sort.Slice(res.Averages, func(i, j int) bool {
		if res.Averages[i].AvgVotes == res.Averages[j].AvgVotes {
			return res.Averages[i].Rating < res.Averages[j].Rating
		}
		return res.Averages[i].AvgVotes > res.Averages[j].AvgVotes
	})
	return res
}
