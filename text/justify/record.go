package justify

import (
	"errors"
	"fmt"
	"math"
)

// Priority orders the tiers in which glyphs take up justification space.
// Lower values are consulted first.
type Priority uint8

const (
	// PriorityKashida is for Arabic elongation (tatweel).
	PriorityKashida Priority = iota
	// PriorityWhitespace is for inter-word space.
	PriorityWhitespace
	// PriorityInterchar is for space between letters.
	PriorityInterchar
	// PriorityNone marks glyphs that only move in the fallback pass.
	PriorityNone
)

// MaxPriority is the last tier consulted before the fallback pass.
const MaxPriority = PriorityNone

// String returns the string representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityKashida:
		return "Kashida"
	case PriorityWhitespace:
		return "Whitespace"
	case PriorityInterchar:
		return "Interchar"
	case PriorityNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Record describes how one glyph may change width.
// Weight and all limits are non-negative.
type Record struct {
	// Weight is the glyph's share of a tier's delta.
	Weight float64

	// GrowPriority is the tier this glyph joins when the line must grow.
	GrowPriority Priority
	// GrowAbsorb lets the glyph take delta beyond its grow limits.
	GrowAbsorb bool
	// GrowLeftLimit and GrowRightLimit cap growth on each side.
	GrowLeftLimit, GrowRightLimit float64

	// ShrinkPriority is the tier this glyph joins when the line must shrink.
	ShrinkPriority Priority
	// ShrinkAbsorb lets the glyph give up space beyond its shrink limits.
	ShrinkAbsorb bool
	// ShrinkLeftLimit and ShrinkRightLimit cap shrinkage on each side.
	ShrinkLeftLimit, ShrinkRightLimit float64
}

// Sentinel errors for the justify package.
var (
	// ErrInvalidRecord is returned for a record with a negative weight or
	// limit, a non-finite value, or a priority beyond MaxPriority.
	ErrInvalidRecord = errors.New("justify: invalid record")

	// ErrInvalidRange is returned when start/limit fall outside the records
	// or the delta is not a finite number.
	ErrInvalidRange = errors.New("justify: invalid range")
)

// RecordError reports which record failed validation.
type RecordError struct {
	Index  int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("justify: record %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrInvalidRecord.
func (e *RecordError) Unwrap() error { return ErrInvalidRecord }

func (r *Record) validate(i int) error {
	values := [...]float64{r.Weight, r.GrowLeftLimit, r.GrowRightLimit, r.ShrinkLeftLimit, r.ShrinkRightLimit}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) {
			return &RecordError{Index: i, Reason: "negative or NaN weight or limit"}
		}
	}
	if math.IsInf(r.Weight, 0) {
		return &RecordError{Index: i, Reason: "infinite weight"}
	}
	if r.GrowPriority > MaxPriority || r.ShrinkPriority > MaxPriority {
		return &RecordError{Index: i, Reason: "priority out of range"}
	}
	return nil
}

func (r *Record) priority(grow bool) Priority {
	if grow {
		return r.GrowPriority
	}
	return r.ShrinkPriority
}

func (r *Record) absorbs(grow bool) bool {
	if grow {
		return r.GrowAbsorb
	}
	return r.ShrinkAbsorb
}

// limits returns the signed left and right limits: positive when growing,
// negative when shrinking.
func (r *Record) limits(grow bool) (left, right float64) {
	if grow {
		return r.GrowLeftLimit, r.GrowRightLimit
	}
	return -r.ShrinkLeftLimit, -r.ShrinkRightLimit
}
