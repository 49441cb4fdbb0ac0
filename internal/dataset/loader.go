package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads a delimited text table with a header row into memory.
// The header row fixes the expected field count; a row with a different
// count surfaces as a *ParseError. A missing file wraps fs.ErrNotExist.
// Leading whitespace is preserved because the source headers carry it
// (e.g. "   name") and the schema map keys on the exact malformed form.
func Load(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if delimiter != 0 {
		r.Comma = delimiter
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{Path: path}, nil
		}
		return nil, &ParseError{Row: 1, Err: err}
	}

	t := &Table{Path: path, Headers: header}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Row: len(t.Rows) + 2, Err: err}
		}
		row := make([]string, len(rec))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
