package text

// GlyphID is a glyph index in a font.
type GlyphID uint16

// Glyph is a nominal glyph from Face.Glyphs: one cmap lookup per rune,
// placed at the running advance with no shaping applied. Faces report
// these for measurement and coverage; line layout uses ShapedGlyph.
type Glyph struct {
	Rune rune
	GID  GlyphID

	// X is the pen position along the baseline.
	X       float64
	Advance float64

	// Bounds is the ink box relative to the glyph origin, y-down.
	Bounds Rect

	// Index is the byte offset of Rune in the input; Cluster is its rune
	// offset.
	Index   int
	Cluster int
}
