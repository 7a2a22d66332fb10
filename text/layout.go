package text

import (
	"fmt"
	"sync"
)

// LayoutOption configures a Layout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	policy    CaretPolicy
	maxPasses int
	ratio     float64
}

func defaultLayoutConfig() layoutConfig {
	return layoutConfig{
		policy:    DefaultCaretPolicy,
		maxPasses: 2,
		ratio:     1,
	}
}

// WithCaretPolicy sets the policy that picks the strong caret. Nil restores
// DefaultCaretPolicy.
func WithCaretPolicy(p CaretPolicy) LayoutOption {
	return func(c *layoutConfig) {
		if p == nil {
			p = DefaultCaretPolicy
		}
		c.policy = p
	}
}

// WithMaxJustifyPasses caps the number of justification passes. Values
// below 1 are treated as 1.
func WithMaxJustifyPasses(n int) LayoutOption {
	return func(c *layoutConfig) {
		c.maxPasses = max(n, 1)
	}
}

// WithJustificationRatio sets how much of the gap to the requested width
// JustifiedLayout closes, clamped to [0, 1]. Zero makes the layout
// unjustifiable.
func WithJustificationRatio(r float64) LayoutOption {
	return func(c *layoutConfig) {
		c.ratio = clampRatio(r)
	}
}

// justifiedRatio marks a layout produced by JustifiedLayout.
const justifiedRatio = -1

// Layout is an immutable view of one line offering metrics, hit testing,
// carets and highlights. All coordinates have the line's origin on its
// baseline at its left edge, with y growing downwards. A Layout is safe for
// concurrent use.
type Layout struct {
	line *Line
	cfg  layoutConfig

	naturalOnce sync.Once
	natural     Rect

	boundsOnce sync.Once
	bounds     Rect

	visibleOnce sync.Once
	visible     float64
}

// NewLayout wraps line.
func NewLayout(line *Line, opts ...LayoutOption) (*Layout, error) {
	if line == nil {
		return nil, fmt.Errorf("%w: nil line", ErrInvalidArgument)
	}
	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Layout{line: line, cfg: cfg}, nil
}

// NewTextLayout lays out s in one style as a single line, resolving its
// base direction from the first strong character.
func NewTextLayout(s string, style StyleValue, opts ...LayoutOption) (*Layout, error) {
	p, err := NewParagraph(s, style)
	if err != nil {
		return nil, err
	}
	idx := buildStyleIndex(p, p.runes)
	levels, paraLevel := XTextBidi{}.Levels(p.runes, p.base)
	levels = lineLevels(p.runes, levels, paraLevel)
	line, err := NewAssembler(nil).Assemble(idx, 0, p.Len(), levels)
	if err != nil {
		return nil, err
	}
	return NewLayout(line, opts...)
}

// Line returns the laid out line.
func (l *Layout) Line() *Line { return l.line }

// CharacterCount returns the number of characters in the layout.
func (l *Layout) CharacterCount() int { return l.line.CharacterCount() }

// IsLeftToRight reports whether the layout's base direction is left to
// right.
func (l *Layout) IsLeftToRight() bool { return l.line.IsLeftToRight() }

// Advance returns the width of the layout.
func (l *Layout) Advance() float64 { return l.line.metrics.Advance }

// Ascent returns the distance from the baseline to the top of the line.
func (l *Layout) Ascent() float64 { return l.line.metrics.Ascent }

// Descent returns the distance from the baseline to the bottom of the line.
func (l *Layout) Descent() float64 { return l.line.metrics.Descent }

// Leading returns the recommended gap below the line.
func (l *Layout) Leading() float64 { return l.line.metrics.Leading }

// Baseline returns the baseline the layout aligns to.
func (l *Layout) Baseline() BaselineID { return l.line.baseline }

// BaselineOffsets returns the layout's baseline table, relative to its
// baseline.
func (l *Layout) BaselineOffsets() BaselineTable { return l.line.baselines }

// JustificationRatio returns the layout's justification ratio, or a
// negative value if the layout is already justified.
func (l *Layout) JustificationRatio() float64 { return l.cfg.ratio }

// IsJustified reports whether the layout came from JustifiedLayout.
func (l *Layout) IsJustified() bool { return l.cfg.ratio == justifiedRatio }

// CharacterLevel returns the bidi level of character i. The positions
// before the first and after the last character take the base level.
func (l *Layout) CharacterLevel(i int) (int, error) {
	n := l.CharacterCount()
	if err := checkRange("CharacterLevel", i, -1, n); err != nil {
		return 0, err
	}
	return l.level(i), nil
}

func (l *Layout) level(i int) int {
	if i == -1 || i == l.CharacterCount() {
		return l.line.paraLevel
	}
	return l.line.CharLevel(i)
}

// VisibleAdvance returns the advance of the layout without its trailing
// whitespace.
func (l *Layout) VisibleAdvance() float64 {
	l.visibleOnce.Do(func() {
		l.visible = l.visibleAdvance()
	})
	return l.visible
}

func (l *Layout) visibleAdvance() float64 {
	ln := l.line
	n := ln.CharacterCount()
	if ln.IsLeftToRight() {
		last := n - 1
		for last >= 0 && ln.IsCharWhitespace(ln.VisualToLogical(last)) {
			last--
		}
		switch last {
		case n - 1:
			return ln.metrics.Advance
		case -1:
			return 0
		}
		i := ln.VisualToLogical(last)
		return ln.CharX(i) + ln.CharAdvance(i)
	}
	first := 0
	for first < n && ln.IsCharWhitespace(ln.VisualToLogical(first)) {
		first++
	}
	switch first {
	case n:
		return 0
	case 0:
		return ln.metrics.Advance
	}
	return ln.metrics.Advance - ln.CharX(ln.VisualToLogical(first))
}

// NaturalBounds returns the box spanned by the line's slanted character
// cells in line coordinates. Hit testing, carets and highlights use it
// when given empty bounds.
func (l *Layout) NaturalBounds() Rect {
	l.naturalOnce.Do(func() {
		l.natural = l.line.italicBounds()
	})
	return l.natural
}

// Bounds returns the box covering the line's character cells and
// decorations after mapping along its baseline path.
func (l *Layout) Bounds() Rect {
	l.boundsOnce.Do(func() {
		r := l.NaturalBounds()
		for _, d := range l.line.decorationBounds() {
			r = r.Union(d)
		}
		if l.line.path != nil {
			corners := l.line.path.mapPolygon(Polygon{
				{X: r.MinX, Y: r.MinY}, {X: r.MaxX, Y: r.MinY},
				{X: r.MaxX, Y: r.MaxY}, {X: r.MinX, Y: r.MaxY},
			})
			r = corners.Bounds()
		}
		l.bounds = r
	})
	return l.bounds
}

func (l *Layout) boundsOr(b Rect) Rect {
	if b.Empty() {
		return l.NaturalBounds()
	}
	return b
}

// String returns a short description of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("Layout{chars: %d, advance: %g, ascent: %g, descent: %g, ltr: %t}",
		l.CharacterCount(), l.Advance(), l.Ascent(), l.Descent(), l.IsLeftToRight())
}
