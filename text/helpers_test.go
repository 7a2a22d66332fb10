package text

import (
	"iter"
	"math"
	"testing"
)

// mockFace is a simple mock implementation for testing
type mockFace struct {
	metrics   Metrics
	size      float64
	direction Direction
	glyphs    map[rune]float64 // rune -> advance
}

func newMockFace(size float64, direction Direction, glyphs map[rune]float64) *mockFace {
	return &mockFace{
		metrics: Metrics{
			Ascent:             size * 0.8,
			Descent:            size * 0.2,
			LineGap:            size * 0.1,
			XHeight:            size * 0.5,
			CapHeight:          size * 0.7,
			UnderlineOffset:    size * 0.1,
			UnderlineThickness: size * 0.05,
		},
		size:      size,
		direction: direction,
		glyphs:    glyphs,
	}
}

// monoFace returns a face where every character is size units wide.
func monoFace(size float64) *mockFace {
	return newMockFace(size, DirectionLTR, nil)
}

// slanted returns a copy of m leaning by slope.
func (m *mockFace) slanted(slope float64) *mockFace {
	c := *m
	c.metrics.ItalicSlope = slope
	return &c
}

func (m *mockFace) Metrics() Metrics     { return m.metrics }
func (m *mockFace) Direction() Direction { return m.direction }
func (m *mockFace) Source() *FontSource  { return nil }
func (m *mockFace) Size() float64        { return m.size }
func (m *mockFace) private()             {}
func (m *mockFace) HasGlyph(r rune) bool { _, ok := m.glyphs[r]; return ok }
func (m *mockFace) Advance(text string) float64 {
	total := 0.0
	for g := range m.Glyphs(text) {
		total += g.Advance
	}
	return total
}
func (m *mockFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		x := 0.0
		cluster := 0
		for byteIndex, r := range text {
			adv, ok := m.glyphs[r]
			if !ok {
				adv = m.size // Default advance for missing glyphs
			}
			glyph := Glyph{
				Rune:    r,
				X:       x,
				Advance: adv,
				Index:   byteIndex,
				Cluster: cluster,
			}
			if !yield(glyph) {
				return
			}
			x += adv
			cluster++
		}
	}
}
func (m *mockFace) AppendGlyphs(dst []Glyph, text string) []Glyph {
	for glyph := range m.Glyphs(text) {
		dst = append(dst, glyph)
	}
	return dst
}

// Hebrew letters stand in for right-to-left text.
const (
	alef  = "\u05D0"
	bet   = "\u05D1"
	gimel = "\u05D2"
	dalet = "\u05D3"
)

func newTestParagraph(t *testing.T, s string, style StyleValue, opts ...ParagraphOption) *Paragraph {
	t.Helper()
	p, err := NewParagraph(s, style, opts...)
	if err != nil {
		t.Fatalf("NewParagraph(%q) error = %v", s, err)
	}
	return p
}

// newTestLine assembles all of p as one line with resolved bidi levels.
func newTestLine(t *testing.T, p *Paragraph) *Line {
	t.Helper()
	idx, err := BuildStyleIndex(p)
	if err != nil {
		t.Fatalf("BuildStyleIndex() error = %v", err)
	}
	levels, paraLevel := XTextBidi{}.Levels(p.runes, p.BaseDirection())
	levels = lineLevels(p.runes, levels, paraLevel)
	line, err := NewAssembler(&BuiltinShaper{}).Assemble(idx, 0, p.Len(), levels)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return line
}

func newTestLayout(t *testing.T, p *Paragraph, opts ...LayoutOption) *Layout {
	t.Helper()
	l, err := NewLayout(newTestLine(t, p), opts...)
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}
	return l
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
