package dataset

import "fmt"

// ParseError reports a malformed row in the source table. Row is the
// 1-based line number including the header.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
