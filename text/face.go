package text

import "iter"

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	// This is the sum of all glyph advances.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Glyphs returns an iterator over all glyphs in the text, one per rune,
	// positioned left to right from the origin without shaping.
	Glyphs(text string) iter.Seq[Glyph]

	// AppendGlyphs appends glyphs for the text to dst and returns the extended slice.
	AppendGlyphs(dst []Glyph, text string) []Glyph

	// Direction returns the text direction for this face.
	Direction() Direction

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in points.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fm := f.source.Parsed().Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}

	slope := fm.ItalicSlope
	if f.config.slopeSet {
		slope = f.config.italicSlope
	}

	m := Metrics{
		Ascent:             fm.Ascent,
		Descent:            descent,
		LineGap:            fm.LineGap,
		XHeight:            fm.XHeight,
		CapHeight:          fm.CapHeight,
		ItalicSlope:        slope,
		UnderlineOffset:    -fm.UnderlinePosition,
		UnderlineThickness: fm.UnderlineThickness,
	}
	if m.UnderlineThickness <= 0 {
		m.UnderlineThickness = f.size / 14
		m.UnderlineOffset = descent / 2
	}
	m.StrikethroughThickness = m.UnderlineThickness
	m.StrikethroughOffset = -(m.XHeight + m.StrikethroughThickness) / 2
	if m.XHeight == 0 {
		m.StrikethroughOffset = -fm.Ascent / 3
	}
	return m
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	total := 0.0
	for _, r := range text {
		total += f.source.glyphAdvance(parsed.GlyphIndex(r), f.size)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.hasGlyph(r)
}

// Glyphs implements Face.Glyphs.
func (f *sourceFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		f.eachGlyph(text, yield)
	}
}

// AppendGlyphs implements Face.AppendGlyphs.
func (f *sourceFace) AppendGlyphs(dst []Glyph, text string) []Glyph {
	f.eachGlyph(text, func(g Glyph) bool {
		dst = append(dst, g)
		return true
	})
	return dst
}

// eachGlyph maps every rune to its nominal glyph. Index is the byte offset
// of the rune and Cluster its rune offset.
func (f *sourceFace) eachGlyph(text string, yield func(Glyph) bool) {
	parsed := f.source.Parsed()
	x := 0.0
	cluster := 0
	for byteIndex, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := f.source.glyphAdvance(gid, f.size)
		glyph := Glyph{
			Rune:    r,
			GID:     GlyphID(gid),
			X:       x,
			Advance: advance,
			Bounds:  parsed.GlyphBounds(gid, f.size),
			Index:   byteIndex,
			Cluster: cluster,
		}
		if !yield(glyph) {
			return
		}
		x += advance
		cluster++
	}
}

// Direction implements Face.Direction.
func (f *sourceFace) Direction() Direction {
	return f.config.direction
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// language returns the face's language tag.
func (f *sourceFace) language() string {
	return f.config.language
}

// private implements the Face interface.
func (f *sourceFace) private() {}
