package dataset

import (
	"sort"
	"strings"
)

// ColumnOverview captures non-null and missing counts for one column.
type ColumnOverview struct {
	Name    string
	NonNull int
	Missing int
}

// ValueCount is a distinct cell value and how many rows carry it.
type ValueCount struct {
	Value string
	Count int
}

// Overview is a pre-cleaning quality snapshot of the raw table: row count,
// per-column missing counts and the distinct raw spellings in the type
// column. It operates on normalized headers but uncleaned cells.
type Overview struct {
	Rows       int
	Columns    []ColumnOverview
	Categories []ValueCount
}

// Summarize walks the table once and accumulates the overview.
func Summarize(t *Table) Overview {
	ov := Overview{Rows: len(t.Rows)}
	typeIdx := -1
	cats := make(map[string]int)
	cols := make([]ColumnOverview, len(t.Headers))
	for i, h := range t.Headers {
		cols[i].Name = h
		if h == "type" {
			typeIdx = i
		}
	}
	for _, row := range t.Rows {
		for i := range cols {
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v == "" {
				cols[i].Missing++
				continue
			}
			cols[i].NonNull++
			if i == typeIdx {
				cats[v]++
			}
		}
	}
	ov.Columns = cols
	for v, n := range cats {
		ov.Categories = append(ov.Categories, ValueCount{Value: v, Count: n})
	}
	sort.Slice(ov.Categories, func(i, j int) bool {
		if ov.Categories[i].Count == ov.Categories[j].Count {
			return ov.Categories[i].Value < ov.Categories[j].Value
		}
		return ov.Categories[i].Count > ov.Categories[j].Count
	})
	return ov
}
