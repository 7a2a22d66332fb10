package text

// ShapedGlyph is one positioned glyph of a shaped run.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first character of the glyph's cluster
	// in ShapeInput.Text. Ligatures share the cluster of their first
	// character; every glyph of a cluster carries the same value.
	Cluster int

	// X is the pen position relative to the run's left edge.
	X float64

	// Y is the vertical offset from the baseline, positive downwards.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
