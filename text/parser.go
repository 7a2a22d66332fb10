package text

import "sync"

// FontParser turns font file bytes into a ParsedFont. The built-in "ximage"
// backend uses golang.org/x/image/font/opentype; others can be added with
// RegisterParser and selected per source with WithParser.
type FontParser interface {
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the font data the layout engine reads: names, the cmap,
// advances, ink bounds and size-scaled metrics. Sizes are in points at
// one unit per point.
type ParsedFont interface {
	// Name and FullName return "" when the name table lacks the entry.
	Name() string
	FullName() string

	NumGlyphs() int
	UnitsPerEm() int

	// GlyphIndex returns 0 (.notdef) for unmapped runes.
	GlyphIndex(r rune) uint16

	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// GlyphBounds returns the ink box of a glyph, y-down.
	GlyphBounds(glyphIndex uint16, ppem float64) Rect

	Metrics(ppem float64) FontMetrics
}

// FontMetrics are the raw font-wide metrics of a ParsedFont, in the font's
// y-up convention: Descent and UnderlinePosition are negative below the
// baseline. Face converts them to the positive-distance Metrics.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64

	XHeight   float64
	CapHeight float64

	// ItalicSlope is the horizontal run per unit of rise, positive when
	// glyphs lean to the right.
	ItalicSlope float64

	UnderlinePosition  float64
	UnderlineThickness float64
}

// Height returns the baseline-to-baseline distance.
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

const defaultParserName = "ximage"

var parsers = struct {
	sync.RWMutex
	byName map[string]FontParser
}{
	byName: map[string]FontParser{defaultParserName: &ximageParser{}},
}

// RegisterParser makes a parser available to WithParser under name,
// replacing any parser already registered with that name.
func RegisterParser(name string, parser FontParser) {
	parsers.Lock()
	defer parsers.Unlock()
	parsers.byName[name] = parser
}

func unregisterParser(name string) {
	if name == defaultParserName {
		return
	}
	parsers.Lock()
	defer parsers.Unlock()
	delete(parsers.byName, name)
}

// getParser returns the named parser, or the default for unknown names.
func getParser(name string) FontParser {
	parsers.RLock()
	defer parsers.RUnlock()
	if p, ok := parsers.byName[name]; ok {
		return p
	}
	return parsers.byName[defaultParserName]
}
