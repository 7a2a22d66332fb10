package text

import (
	"cmp"
	"fmt"
	"slices"
)

// Line is a laid out run of characters: components in logical order placed
// left to right in visual order on a shared baseline. Character indices
// passed to Line methods are relative to the line and must be in
// [0, CharacterCount()).
type Line struct {
	text  []rune
	start int
	comps []*Component

	// compOrder maps visual position to logical component, nil for the
	// identity. compVis is its inverse.
	compOrder []int
	compVis   []int

	// locs holds the origin of each component by visual position, plus
	// the end of the line.
	locs []Point

	levels    []int
	paraLevel int
	v2l, l2v  []int
	charComp  []int

	baseline  BaselineID
	baselines BaselineTable
	metrics   LineMetrics
	path      *BaselinePath
}

// newLine places comps, which must cover text exactly, on one line.
// levels holds the line's bidi levels, nil meaning all zero.
func newLine(text []rune, start int, comps []*Component, levels []int, paraLevel int) (*Line, error) {
	end := start + len(text)
	pos := start
	for _, c := range comps {
		if c.start != pos {
			break
		}
		pos = c.end
	}
	if len(comps) == 0 || pos != end {
		return nil, fmt.Errorf("%w: components cover [%d, %d), want [%d, %d)", ErrContract, start, pos, start, end)
	}

	l := &Line{
		text:      text,
		start:     start,
		comps:     comps,
		levels:    levels,
		paraLevel: paraLevel,
		charComp:  make([]int, len(text)),
	}
	for ci, c := range comps {
		for i := c.start; i < c.end; i++ {
			l.charComp[i-start] = ci
		}
	}
	l.v2l = visualOrder(levels)
	l.l2v = invertOrder(l.v2l)
	l.orderComponents()
	l.normalizeBaselines()
	l.computeMetrics()
	l.place()
	return l, nil
}

func (l *Line) orderComponents() {
	n := len(l.comps)
	if n > 1 && l.v2l != nil {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(a, b int) int {
			return cmp.Compare(l.l2v[l.comps[a].start-l.start], l.l2v[l.comps[b].start-l.start])
		})
		for i, v := range order {
			if i != v {
				l.compOrder = order
				break
			}
		}
	}
	l.compVis = invertOrder(l.compOrder)
}

// componentAt returns the component shown at visual position v.
func (l *Line) componentAt(v int) *Component {
	if l.compOrder == nil {
		return l.comps[v]
	}
	return l.comps[l.compOrder[v]]
}

func (l *Line) visualPos(ci int) int {
	if l.compVis == nil {
		return ci
	}
	return l.compVis[ci]
}

// normalizeBaselines takes the baseline of the first character and the
// baseline table of the first font component, shifted so the line's
// baseline sits at zero.
func (l *Line) normalizeBaselines() {
	first := l.comps[0].metrics
	if first.Pin == PinNone {
		l.baseline = first.Baseline
	}
	var table BaselineTable
	for _, c := range l.comps {
		if c.style.Kind() == StyleFont {
			table = c.metrics.Baselines
			break
		}
	}
	l.baselines = table.relativeTo(l.baseline)
}

func (l *Line) computeMetrics() {
	var ascent, descent, lead float64
	var pinned, pinnedLead float64
	for v := range l.comps {
		cm := l.componentAt(v).metrics
		if cm.Pin != PinNone {
			pinned = max(pinned, cm.Ascent+cm.Descent)
			pinnedLead = max(pinnedLead, cm.Ascent+cm.Descent+cm.Leading)
			continue
		}
		off := cm.effectiveBaselineOffset(l.baselines, 0, 0)
		ascent = max(ascent, cm.Ascent-off)
		descent = max(descent, off+cm.Descent)
		lead = max(lead, off+cm.Descent+cm.Leading)
	}
	if pinned > ascent+descent {
		descent = pinned - ascent
	}
	if pinnedLead > ascent+lead {
		lead = pinnedLead - ascent
	}
	l.metrics = LineMetrics{
		Ascent:  ascent,
		Descent: descent,
		Leading: max(lead-descent, 0),
	}
}

func (l *Line) offset(cm CoreMetrics) float64 {
	return cm.effectiveBaselineOffset(l.baselines, l.metrics.Ascent, l.metrics.Descent)
}

// place positions components left to right. Adjacent components of
// different slant, baseline or script offset are kerned so their slanted
// boxes touch, and a slanted last component gets padding for its overhang.
func (l *Line) place() {
	l.locs = make([]Point, len(l.comps)+1)
	x, y := 0.0, 0.0
	var prev *CoreMetrics
	for v := range l.comps {
		c := l.componentAt(v)
		cm := c.metrics
		y = l.offset(cm)
		if prev != nil && (prev.ItalicSlope != 0 || cm.ItalicSlope != 0) &&
			(prev.ItalicSlope != cm.ItalicSlope || prev.Baseline != cm.Baseline || prev.SSOffset != cm.SSOffset) {
			pb := l.offset(*prev)
			top := max(pb-prev.Ascent, y-cm.Ascent)
			bottom := min(pb+prev.Descent, y+cm.Descent)
			dTop := prev.ItalicSlope*(pb-top) - cm.ItalicSlope*(y-top)
			dBottom := prev.ItalicSlope*(pb-bottom) - cm.ItalicSlope*(y-bottom)
			x += max(dTop, dBottom)
		}
		l.locs[v] = Point{X: x, Y: y}
		x += c.advance
		prev = &cm
	}
	if prev != nil {
		switch s := prev.ItalicSlope; {
		case s > 0:
			x += s * prev.Ascent
		case s < 0:
			x -= s * prev.Descent
		}
	}
	l.locs[len(l.comps)] = Point{X: x, Y: y}
	l.metrics.Advance = x

	transformed := false
	for _, c := range l.comps {
		if !c.deco.Transform.IsIdentity() {
			transformed = true
			break
		}
	}
	if !transformed {
		return
	}
	n := len(l.comps)
	starts := make([]float64, n)
	lengths := make([]float64, n)
	dirs := make([]Point, n)
	for v := range n {
		starts[v] = l.locs[v].X
		lengths[v] = l.locs[v+1].X - l.locs[v].X
		dirs[v] = l.componentAt(v).deco.Transform.baselineDirection()
	}
	l.path = newBaselinePath(starts, lengths, dirs)
}

// withComponents returns a line over the same characters with comps in
// place of l's components.
func (l *Line) withComponents(comps []*Component) (*Line, error) {
	return newLine(l.text, l.start, comps, l.levels, l.paraLevel)
}

// Start returns the paragraph offset of the line's first character.
func (l *Line) Start() int { return l.start }

// End returns the paragraph offset after the line's last character.
func (l *Line) End() int { return l.start + len(l.text) }

// Text returns the line's characters.
func (l *Line) Text() string { return string(l.text) }

// CharacterCount returns the number of characters in the line.
func (l *Line) CharacterCount() int { return len(l.text) }

// IsLeftToRight reports whether the line's base direction is left to right.
func (l *Line) IsLeftToRight() bool { return l.paraLevel%2 == 0 }

// Metrics returns the line's extent.
func (l *Line) Metrics() LineMetrics { return l.metrics }

// Baseline returns the baseline the line aligns to.
func (l *Line) Baseline() BaselineID { return l.baseline }

// BaselineOffsets returns the line's baseline table, relative to its
// baseline.
func (l *Line) BaselineOffsets() BaselineTable { return l.baselines }

// Path returns the line's baseline path, or nil when every component runs
// along the plain horizontal baseline.
func (l *Line) Path() *BaselinePath { return l.path }

// Components returns the components in logical order.
func (l *Line) Components() []*Component { return slices.Clone(l.comps) }

// VisualComponents returns the components in visual order with their
// origins.
func (l *Line) VisualComponents() ([]*Component, []Point) {
	out := make([]*Component, len(l.comps))
	for v := range out {
		out[v] = l.componentAt(v)
	}
	return out, slices.Clone(l.locs[:len(l.comps)])
}

func (l *Line) comp(i int) *Component { return l.comps[l.charComp[i]] }

func (l *Line) charInfo(i int) *charInfo { return l.comp(i).char(l.start + i) }

func (l *Line) loc(i int) Point { return l.locs[l.visualPos(l.charComp[i])] }

// CharX returns the left edge of character i.
func (l *Line) CharX(i int) float64 { return l.loc(i).X + l.charInfo(i).x }

// CharY returns the baseline offset of character i.
func (l *Line) CharY(i int) float64 { return l.loc(i).Y }

// CharAdvance returns the width of character i.
func (l *Line) CharAdvance(i int) float64 { return l.charInfo(i).advance }

// CharAscent returns the ascent of character i's component.
func (l *Line) CharAscent(i int) float64 { return l.comp(i).metrics.Ascent }

// CharDescent returns the descent of character i's component.
func (l *Line) CharDescent(i int) float64 { return l.comp(i).metrics.Descent }

// CharSlope returns the italic slope of character i.
func (l *Line) CharSlope(i int) float64 { return l.comp(i).metrics.ItalicSlope }

// CharLevel returns the bidi level of character i.
func (l *Line) CharLevel(i int) int {
	if l.levels == nil {
		return 0
	}
	return l.levels[i]
}

// IsCharLTR reports whether character i runs left to right.
func (l *Line) IsCharLTR(i int) bool { return l.CharLevel(i)%2 == 0 }

// IsCharWhitespace reports whether character i is whitespace.
func (l *Line) IsCharWhitespace(i int) bool { return l.charInfo(i).whitespace }

// caretValid reports whether a caret may sit at the leading edge of
// character i.
func (l *Line) caretValid(i int) bool { return l.charInfo(i).caret }

// LogicalToVisual returns the visual position of character i.
func (l *Line) LogicalToVisual(i int) int {
	if l.l2v == nil {
		return i
	}
	return l.l2v[i]
}

// VisualToLogical returns the character shown at visual position v.
func (l *Line) VisualToLogical(v int) int {
	if l.v2l == nil {
		return v
	}
	return l.v2l[v]
}

// VisualOrder returns the logical index of the character at each visual
// position.
func (l *Line) VisualOrder() []int {
	if l.v2l != nil {
		return slices.Clone(l.v2l)
	}
	order := make([]int, len(l.text))
	for i := range order {
		order[i] = i
	}
	return order
}

// AdvanceBetween returns the summed advance of characters [a, b).
func (l *Line) AdvanceBetween(a, b int) float64 {
	total := 0.0
	for _, c := range l.comps {
		if c.end-l.start <= a {
			continue
		}
		if c.start-l.start >= b {
			break
		}
		total += c.advanceBetween(l.start+a, l.start+b)
	}
	return total
}

// italicBounds returns the union of the components' slanted boxes in line
// coordinates.
func (l *Line) italicBounds() Rect {
	var r Rect
	for v := range l.comps {
		b := l.componentAt(v).italicBounds()
		loc := l.locs[v]
		b = Rect{MinX: b.MinX + loc.X, MinY: b.MinY + loc.Y, MaxX: b.MaxX + loc.X, MaxY: b.MaxY + loc.Y}
		if v == 0 {
			r = b
		} else {
			r = r.Union(b)
		}
	}
	return r
}

// decorationBounds returns the boxes of underlines and strikethroughs in
// line coordinates.
func (l *Line) decorationBounds() []Rect {
	var out []Rect
	for v := range l.comps {
		c := l.componentAt(v)
		loc := l.locs[v]
		cm := c.metrics
		if c.deco.Underline {
			y := loc.Y + cm.UnderlineOffset
			out = append(out, Rect{MinX: loc.X, MinY: y, MaxX: loc.X + c.advance, MaxY: y + cm.UnderlineThickness})
		}
		if c.deco.Strikethrough {
			y := loc.Y + cm.StrikethroughOffset
			out = append(out, Rect{MinX: loc.X, MinY: y, MaxX: loc.X + c.advance, MaxY: y + cm.StrikethroughThickness})
		}
	}
	return out
}
