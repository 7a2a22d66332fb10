package text

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser is the default FontParser, backed by x/image sfnt.
type ximageParser struct{}

func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// sfnt.Font methods are safe for concurrent use as long as each caller
// brings its own Buffer.
var sfntBuffers = sync.Pool{New: func() any { return new(sfnt.Buffer) }}

type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) withBuffer(fn func(*sfnt.Buffer)) {
	buf := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buf)
	fn(buf)
}

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	var s string
	f.withBuffer(func(buf *sfnt.Buffer) {
		if v, err := f.font.Name(buf, id); err == nil {
			s = v
		}
	})
	return s
}

func (f *ximageParsedFont) Name() string     { return f.name(sfnt.NameIDFamily) }
func (f *ximageParsedFont) FullName() string { return f.name(sfnt.NameIDFull) }
func (f *ximageParsedFont) NumGlyphs() int   { return f.font.NumGlyphs() }
func (f *ximageParsedFont) UnitsPerEm() int  { return int(f.font.UnitsPerEm()) }

func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	var gid sfnt.GlyphIndex
	f.withBuffer(func(buf *sfnt.Buffer) {
		if idx, err := f.font.GlyphIndex(buf, r); err == nil {
			gid = idx
		}
	})
	return uint16(gid)
}

func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var advance fixed.Int26_6
	f.withBuffer(func(buf *sfnt.Buffer) {
		if a, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone); err == nil {
			advance = a
		}
	})
	return fixedToFloat64(advance)
}

func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	var r Rect
	f.withBuffer(func(buf *sfnt.Buffer) {
		b, _, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone)
		if err != nil {
			return
		}
		r = Rect{
			MinX: fixedToFloat64(b.Min.X),
			MinY: fixedToFloat64(b.Min.Y),
			MaxX: fixedToFloat64(b.Max.X),
			MaxY: fixedToFloat64(b.Max.Y),
		}
	})
	return r
}

// Metrics reads hhea/OS2 metrics through sfnt and the italic and underline
// values from the post table. sfnt reports Descent as a positive distance.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var m FontMetrics
	f.withBuffer(func(buf *sfnt.Buffer) {
		fm, err := f.font.Metrics(buf, toFixed(ppem), font.HintingNone)
		if err != nil {
			return
		}
		m = FontMetrics{
			Ascent:    fixedToFloat64(fm.Ascent),
			Descent:   -fixedToFloat64(fm.Descent),
			LineGap:   max(0, fixedToFloat64(fm.Height-fm.Ascent-fm.Descent)),
			XHeight:   fixedToFloat64(fm.XHeight),
			CapHeight: fixedToFloat64(fm.CapHeight),
		}
		// The hhea caret slope is exact; post.italicAngle is the fallback.
		if fm.CaretSlope.X != 0 && fm.CaretSlope.Y != 0 {
			m.ItalicSlope = float64(fm.CaretSlope.X) / float64(fm.CaretSlope.Y)
		}
	})

	if post := f.font.PostTable(); post != nil {
		if m.ItalicSlope == 0 && post.ItalicAngle != 0 {
			m.ItalicSlope = -math.Tan(post.ItalicAngle * math.Pi / 180)
		}
		scale := ppem / float64(f.font.UnitsPerEm())
		m.UnderlinePosition = float64(post.UnderlinePosition) * scale
		m.UnderlineThickness = float64(post.UnderlineThickness) * scale
	}
	return m
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
