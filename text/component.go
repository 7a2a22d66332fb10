package text

import (
	"slices"
	"unicode"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textline/text/justify"
)

// Component is one shaped chunk of a line: a contiguous range of characters
// sharing style, decoration, bidi level and script. Components are
// immutable; justification produces new ones.
type Component struct {
	start, end int
	level      int
	style      StyleValue
	deco       Decoration
	script     language.Script
	metrics    CoreMetrics

	// glyphs are in visual order with X from the component's left edge.
	// Graphic components have none.
	glyphs []ShapedGlyph

	// chars are in logical order.
	chars   []charInfo
	advance float64
}

// charInfo is the horizontal extent of one character within its component.
type charInfo struct {
	r          rune
	x, advance float64
	whitespace bool
	// caret reports whether a caret may sit before this character.
	caret bool
}

// Start returns the offset of the first character.
func (c *Component) Start() int { return c.start }

// End returns the offset after the last character.
func (c *Component) End() int { return c.end }

// Len returns the number of characters.
func (c *Component) Len() int { return c.end - c.start }

// Level returns the bidi embedding level.
func (c *Component) Level() int { return c.level }

// IsLTR reports whether the component runs left to right.
func (c *Component) IsLTR() bool { return c.level%2 == 0 }

// Style returns the component's style.
func (c *Component) Style() StyleValue { return c.style }

// Decoration returns the component's decoration.
func (c *Component) Decoration() Decoration { return c.deco }

// Script returns the script the component was shaped with.
func (c *Component) Script() language.Script { return c.script }

// Metrics returns the component's vertical metrics.
func (c *Component) Metrics() CoreMetrics { return c.metrics }

// Advance returns the component's width.
func (c *Component) Advance() float64 { return c.advance }

// Glyphs returns a copy of the shaped glyphs in visual order.
func (c *Component) Glyphs() []ShapedGlyph { return slices.Clone(c.glyphs) }

func (c *Component) char(i int) *charInfo { return &c.chars[i-c.start] }

// advanceBetween sums the advances of characters [a, b).
func (c *Component) advanceBetween(a, b int) float64 {
	a, b = max(a, c.start), min(b, c.end)
	total := 0.0
	for i := a; i < b; i++ {
		total += c.char(i).advance
	}
	return total
}

// lineBreakIndex returns the first character at or after from whose
// cumulative advance exceeds width, or End with the width left over.
func (c *Component) lineBreakIndex(from int, width float64) (int, float64) {
	for i := max(from, c.start); i < c.end; i++ {
		width -= c.char(i).advance
		if width < 0 {
			return i, width
		}
	}
	return c.end, width
}

// italicBounds returns the box covering the component's slanted glyph
// cell, relative to its origin on the baseline.
func (c *Component) italicBounds() Rect {
	m := c.metrics
	r := Rect{MinX: 0, MinY: -m.Ascent, MaxX: c.advance, MaxY: m.Descent}
	switch s := m.ItalicSlope; {
	case s > 0:
		r.MinX -= s * m.Descent
		r.MaxX += s * m.Ascent
	case s < 0:
		r.MinX += s * m.Ascent
		r.MaxX -= s * m.Descent
	}
	return r
}

// visualChars returns the component's character offsets in visual order.
func (c *Component) visualChars() []int {
	order := make([]int, c.Len())
	for i := range order {
		if c.IsLTR() {
			order[i] = c.start + i
		} else {
			order[i] = c.end - 1 - i
		}
	}
	return order
}

func isWhitespace(r rune) bool {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return false
	}
	return unicode.IsSpace(r)
}

func isMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// newGraphicComponent lays out one graphic per character.
func newGraphicComponent(start, end, level int, style StyleValue, deco Decoration) *Component {
	g := style.Graphic()
	c := &Component{
		start:   start,
		end:     end,
		level:   level,
		style:   style,
		deco:    deco,
		metrics: g.coreMetrics(),
		chars:   make([]charInfo, end-start),
		advance: g.Advance * float64(end-start),
	}
	c.metrics.SSOffset = ssOffset(deco.Superscript, g.Ascent)
	for i := range c.chars {
		pos := i
		if !c.IsLTR() {
			pos = len(c.chars) - 1 - i
		}
		c.chars[i] = charInfo{r: '\uFFFC', x: float64(pos) * g.Advance, advance: g.Advance, caret: true}
	}
	return c
}

// fontCoreMetrics derives the component metrics of a face run.
func fontCoreMetrics(face Face, deco Decoration, script language.Script) CoreMetrics {
	m := face.Metrics()
	return CoreMetrics{
		Ascent:                 m.Ascent,
		Descent:                m.Descent,
		Leading:                m.LineGap,
		Baseline:               baselineForScript(script),
		Baselines:              baselineTableFor(m),
		ItalicSlope:            m.ItalicSlope,
		SSOffset:               ssOffset(deco.Superscript, m.Ascent),
		UnderlineOffset:        m.UnderlineOffset,
		UnderlineThickness:     m.UnderlineThickness,
		StrikethroughOffset:    m.StrikethroughOffset,
		StrikethroughThickness: m.StrikethroughThickness,
	}
}

// newFontComponent builds a component from shaped glyphs of text[start:end].
func newFontComponent(text []rune, start, end, level int, style StyleValue, deco Decoration,
	script language.Script, glyphs []ShapedGlyph) *Component {
	c := &Component{
		start:   start,
		end:     end,
		level:   level,
		style:   style,
		deco:    deco,
		script:  script,
		metrics: fontCoreMetrics(style.Face(), deco, script),
		glyphs:  glyphs,
	}
	for _, g := range glyphs {
		c.advance += g.XAdvance
	}
	c.chars = charTable(text, start, end, glyphs, !c.IsLTR())
	return c
}

// clusterSpan is the pen extent of one glyph cluster.
type clusterSpan struct {
	left, right float64
	seen        bool
}

// charTable spreads each cluster's width over the spacing characters of
// the cluster. Combining marks get no width and sit at the trailing edge of
// the character before them.
func charTable(text []rune, start, end int, glyphs []ShapedGlyph, rtl bool) []charInfo {
	n := end - start
	chars := make([]charInfo, n)
	spans := make([]clusterSpan, n)
	clusterStart := make([]bool, n+1)
	clusterStart[0], clusterStart[n] = true, true

	pen := 0.0
	for _, g := range glyphs {
		ci := min(max(g.Cluster-start, 0), n-1)
		clusterStart[ci] = true
		s := &spans[ci]
		if !s.seen {
			s.left, s.right, s.seen = pen, pen+g.XAdvance, true
		} else {
			s.left = min(s.left, pen)
			s.right = max(s.right, pen+g.XAdvance)
		}
		pen += g.XAdvance
	}

	carets := graphemeStarts(text[start:end])
	for cs := 0; cs < n; {
		ce := cs + 1
		for !clusterStart[ce] {
			ce++
		}
		s := spans[cs]
		if !s.seen {
			edge := 0.0
			if rtl {
				edge = pen
			}
			s.left, s.right = edge, edge
		}

		spacing := 0
		for i := cs; i < ce; i++ {
			if i == cs || !isMark(text[start+i]) {
				spacing++
			}
		}
		w := (s.right - s.left) / float64(spacing)

		x := s.left
		if rtl {
			x = s.right
		}
		for i := cs; i < ce; i++ {
			r := text[start+i]
			ch := charInfo{r: r, whitespace: isWhitespace(r), caret: carets[i]}
			if i == cs || !isMark(r) {
				ch.advance = w
				if rtl {
					x -= w
				}
				ch.x = x
				if !rtl {
					x += w
				}
			} else {
				ch.x = x
			}
			chars[i] = ch
		}
		cs = ce
	}
	return chars
}

// justificationRecord returns the default record of character i.
func (c *Component) justificationRecord(i int) justify.Record {
	if c.style.Kind() == StyleGraphic {
		adv := c.style.Graphic().Advance
		return justify.Record{
			Weight:         adv,
			GrowPriority:   justify.PriorityInterchar,
			GrowLeftLimit:  adv / 3,
			GrowRightLimit: adv / 3,
			ShrinkPriority: justify.PriorityWhitespace,
		}
	}
	size := c.style.Face().Size()
	ch := c.char(i)
	switch {
	case ch.r == '\u0640':
		return justify.Record{
			Weight:           size,
			GrowPriority:     justify.PriorityKashida,
			GrowAbsorb:       true,
			GrowLeftLimit:    size,
			GrowRightLimit:   size,
			ShrinkPriority:   justify.PriorityKashida,
			ShrinkAbsorb:     true,
			ShrinkLeftLimit:  ch.advance / 2,
			ShrinkRightLimit: ch.advance / 2,
		}
	case ch.whitespace:
		return justify.Record{
			Weight:           size,
			GrowPriority:     justify.PriorityWhitespace,
			GrowAbsorb:       true,
			GrowRightLimit:   size,
			ShrinkPriority:   justify.PriorityWhitespace,
			ShrinkAbsorb:     true,
			ShrinkRightLimit: size / 4,
		}
	case ch.advance == 0:
		return justify.Record{
			GrowPriority:   justify.PriorityNone,
			ShrinkPriority: justify.PriorityNone,
		}
	default:
		return justify.Record{
			Weight:         size,
			GrowPriority:   justify.PriorityInterchar,
			GrowLeftLimit:  size,
			GrowRightLimit: size,
			ShrinkPriority: justify.PriorityNone,
		}
	}
}

// applyJustification returns a copy of c with deltas applied. deltas holds
// a (left, right) pair per character in visual order. Whitespace absorbs
// its deltas into its advance; other characters move by their left delta
// and push later characters by both. The flag reports that a whitespace
// advance went negative and was clamped, so the line should be justified
// again.
func (c *Component) applyJustification(deltas []float64) (*Component, bool) {
	nc := *c
	nc.chars = slices.Clone(c.chars)
	nc.glyphs = slices.Clone(c.glyphs)

	rejustify := false
	shift := 0.0
	moved := make([]float64, c.Len())
	for v, i := range c.visualChars() {
		dl, dr := deltas[2*v], deltas[2*v+1]
		ch := nc.char(i)
		if ch.whitespace {
			ch.x += shift
			adv := ch.advance + dl + dr
			if adv < 0 {
				adv, rejustify = 0, true
			}
			moved[i-c.start] = shift
			shift += adv - ch.advance
			ch.advance = adv
			continue
		}
		ch.x += shift + dl
		moved[i-c.start] = shift + dl
		shift += dl + dr
	}

	for gi := range nc.glyphs {
		g := &nc.glyphs[gi]
		ci := min(max(g.Cluster-c.start, 0), c.Len()-1)
		g.X += moved[ci]
		if nc.chars[ci].whitespace {
			g.XAdvance += nc.chars[ci].advance - c.chars[ci].advance
		}
	}
	nc.advance += shift
	return &nc, rejustify
}
