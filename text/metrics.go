package text

import "github.com/go-text/typesetting/language"

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64

	// ItalicSlope is the horizontal run per unit of rise. Positive values
	// lean to the right, zero means upright.
	ItalicSlope float64

	// UnderlineOffset is the distance from the baseline to the top of the
	// underline, positive below the baseline.
	UnderlineOffset float64

	// UnderlineThickness is the stroke height of the underline.
	UnderlineThickness float64

	// StrikethroughOffset is the distance from the baseline to the top of
	// the strikethrough, negative above the baseline.
	StrikethroughOffset float64

	// StrikethroughThickness is the stroke height of the strikethrough.
	StrikethroughThickness float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BaselineID names one of the baselines a component can align to.
type BaselineID uint8

const (
	// BaselineRoman is the baseline of Latin, Greek, Cyrillic and most scripts.
	BaselineRoman BaselineID = iota
	// BaselineCenter is halfway between ascent and descent; ideographic
	// text centers on it.
	BaselineCenter
	// BaselineHanging is the baseline Devanagari and related scripts hang
	// from.
	BaselineHanging

	numBaselines = 3
)

// String returns the string representation of the baseline.
func (b BaselineID) String() string {
	switch b {
	case BaselineRoman:
		return "Roman"
	case BaselineCenter:
		return "Center"
	case BaselineHanging:
		return "Hanging"
	default:
		return unknownStr
	}
}

// BaselineTable holds the offset of each baseline from the roman baseline,
// in y-down layout units.
type BaselineTable [numBaselines]float64

// relativeTo returns the table shifted so that baseline id sits at zero.
func (t BaselineTable) relativeTo(id BaselineID) BaselineTable {
	base := t[id]
	for i := range t {
		t[i] -= base
	}
	return t
}

// baselineTableFor derives a baseline table from font metrics.
func baselineTableFor(m Metrics) BaselineTable {
	hanging := m.CapHeight
	if hanging <= 0 {
		hanging = 0.8 * m.Ascent
	}
	return BaselineTable{
		BaselineRoman:   0,
		BaselineCenter:  (m.Descent - m.Ascent) / 2,
		BaselineHanging: -hanging,
	}
}

// baselineForScript returns the baseline text of script s aligns to.
func baselineForScript(s language.Script) BaselineID {
	switch s {
	case language.Devanagari, language.Bengali, language.Gurmukhi, language.Tibetan:
		return BaselineHanging
	default:
		return BaselineRoman
	}
}

// Pin anchors a graphic to the top or bottom of the line instead of a
// baseline.
type Pin uint8

const (
	// PinNone aligns to a baseline.
	PinNone Pin = iota
	// PinTop aligns the graphic's ascent with the line's ascent.
	PinTop
	// PinBottom aligns the graphic's descent with the line's descent.
	PinBottom
)

// CoreMetrics are the vertical metrics of one component.
type CoreMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64

	// Baseline is the baseline the component aligns to. Ignored when Pin is
	// not PinNone.
	Baseline BaselineID
	Pin      Pin

	// Baselines is the component's own baseline table.
	Baselines BaselineTable

	// ItalicSlope is the component's lean, positive to the right.
	ItalicSlope float64

	// SSOffset is the superscript or subscript shift, negative raises.
	SSOffset float64

	UnderlineOffset        float64
	UnderlineThickness     float64
	StrikethroughOffset    float64
	StrikethroughThickness float64
}

// effectiveBaselineOffset returns the y offset of this component's baseline
// on a line with the given baseline table, ascent and descent.
func (cm CoreMetrics) effectiveBaselineOffset(table BaselineTable, ascent, descent float64) float64 {
	switch cm.Pin {
	case PinTop:
		return -ascent + cm.Ascent
	case PinBottom:
		return descent - cm.Descent
	default:
		return table[cm.Baseline] + cm.SSOffset
	}
}

// Superscript shifts as a fraction of ascent per level.
const (
	superscriptRise = 0.375
	subscriptDrop   = 0.21
)

func ssOffset(level int, ascent float64) float64 {
	switch {
	case level > 0:
		return -float64(level) * superscriptRise * ascent
	case level < 0:
		return float64(-level) * subscriptDrop * ascent
	default:
		return 0
	}
}

// LineMetrics are the vertical and horizontal extent of a line.
type LineMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64
	// Advance is the distance from the line's left edge to the right edge
	// of its last visual component.
	Advance float64
}

// Height returns ascent + descent + leading.
func (m LineMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.Leading
}
