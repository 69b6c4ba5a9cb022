package tsplib

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when the input ends inside the header.
	ErrTruncatedHeader = errors.New("tsplib: truncated header")

	// ErrMalformedRecord is matched (errors.Is) by every *RecordError.
	ErrMalformedRecord = errors.New("tsplib: malformed record")

	// ErrNoCities is returned when no coordinate record precedes the terminator.
	ErrNoCities = errors.New("tsplib: no cities")
)

// RecordError locates a record that failed to parse.
type RecordError struct {
	Line int    // 1-based line number in the input
	Text string // raw line
	Err  error  // underlying strconv error, or nil for a short record
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tsplib: line %d %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("tsplib: line %d %q: want \"id x y\"", e.Line, e.Text)
}

// Is reports ErrMalformedRecord so callers need not type-assert.
func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }

func (e *RecordError) Unwrap() error { return e.Err }
