package launches

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when a source file holds a header but no launch rows.
var ErrEmptyDataset = errors.New("dataset contains no records")

// StartupError reports a dataset that could not be loaded at all: the file is
// missing or unreadable, a required column is absent, or there are no rows.
type StartupError struct {
	Path string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("loading launch data from %s: %v", e.Path, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// MalformedRecordError reports a single row that fails record validation.
// Row is 1-based and does not count the header.
type MalformedRecordError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d: column %q value %q: %s", e.Row, e.Column, e.Value, e.Reason)
}
