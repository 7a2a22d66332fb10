package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction is the horizontal flow of a face or a shaped run.
type Direction int

const (
	// DirectionLTR flows left to right.
	DirectionLTR Direction = iota
	// DirectionRTL flows right to left.
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// directionForLevel maps a bidi embedding level to a run direction.
func directionForLevel(level int) Direction {
	if level%2 == 1 {
		return DirectionRTL
	}
	return DirectionLTR
}

// BaseDirection is the paragraph-level direction requested for bidi
// resolution.
type BaseDirection uint8

const (
	// BaseAuto takes the direction of the first strong character,
	// defaulting to left-to-right.
	BaseAuto BaseDirection = iota
	// BaseLTR forces a left-to-right paragraph.
	BaseLTR
	// BaseRTL forces a right-to-left paragraph.
	BaseRTL
)

// String returns the string representation of the base direction.
func (b BaseDirection) String() string {
	switch b {
	case BaseAuto:
		return "Auto"
	case BaseLTR:
		return "LTR"
	case BaseRTL:
		return "RTL"
	default:
		return unknownStr
	}
}
