package servqual

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates the workbook contains no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// MalformedInputError indicates a required sheet could not be read as tabular
// data. Row-level problems never raise it: normalization is total and
// substitutes defaults for missing or misformed fields.
type MalformedInputError struct {
	BookName string
	Sheet    string
	Err      error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed workbook %q (sheet %q): %v", e.BookName, e.Sheet, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
