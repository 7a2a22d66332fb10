package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFaces is returned when no faces are provided to MultiFace.
	ErrEmptyFaces = errors.New("text: faces cannot be empty")

	// ErrInvalidArgument is returned for caller contract violations: empty
	// paragraphs, offsets out of range, unusable widths.
	ErrInvalidArgument = errors.New("text: invalid argument")

	// ErrAlreadyJustified is returned by JustifiedLayout on a layout that
	// is itself the result of justification.
	ErrAlreadyJustified = fmt.Errorf("%w: layout is already justified", ErrInvalidArgument)

	// ErrContract is returned when line assembly produces components that
	// do not cover the requested range exactly.
	ErrContract = errors.New("text: component coverage mismatch")
)

// DirectionMismatchError is returned when faces have different directions.
type DirectionMismatchError struct {
	Index    int
	Got      Direction
	Expected Direction
}

func (e *DirectionMismatchError) Error() string {
	return fmt.Sprintf("text: face %d has direction %v, expected %v", e.Index, e.Got, e.Expected)
}

// RangeError reports an offset outside the range an operation accepts.
type RangeError struct {
	Op       string
	Index    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("text: %s: offset %d out of range [%d, %d]", e.Op, e.Index, e.Min, e.Max)
}

// Unwrap returns ErrInvalidArgument.
func (e *RangeError) Unwrap() error { return ErrInvalidArgument }

func checkRange(op string, i, lo, hi int) error {
	if i < lo || i > hi {
		return &RangeError{Op: op, Index: i, Min: lo, Max: hi}
	}
	return nil
}
