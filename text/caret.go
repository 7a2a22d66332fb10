package text

import (
	"fmt"
	"math"
	"slices"
)

// Edge is the side of a character a caret sits on.
type Edge uint8

const (
	// EdgeLeading is the side text of the character's direction starts at.
	EdgeLeading Edge = iota
	// EdgeTrailing is the side it ends at.
	EdgeTrailing
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeading:
		return "Leading"
	case EdgeTrailing:
		return "Trailing"
	default:
		return unknownStr
	}
}

// CaretSite is an edge of a character. Index ranges over [-1, n] for a
// line of n characters; -1 and n stand for the line's start and end.
type CaretSite struct {
	Index int
	Edge  Edge
}

// LeadingSite returns the leading edge of character i.
func LeadingSite(i int) CaretSite { return CaretSite{Index: i, Edge: EdgeLeading} }

// TrailingSite returns the trailing edge of character i.
func TrailingSite(i int) CaretSite { return CaretSite{Index: i, Edge: EdgeTrailing} }

// AfterOffset returns the site just after insertion offset o.
func AfterOffset(o int) CaretSite { return LeadingSite(o) }

// BeforeOffset returns the site just before insertion offset o.
func BeforeOffset(o int) CaretSite { return TrailingSite(o - 1) }

// IsLeading reports whether s is a leading edge.
func (s CaretSite) IsLeading() bool { return s.Edge == EdgeLeading }

// InsertionOffset returns the text offset a caret at s inserts at.
func (s CaretSite) InsertionOffset() int {
	if s.IsLeading() {
		return s.Index
	}
	return s.Index + 1
}

// OtherSite returns the site on the other side of the same insertion
// offset.
func (s CaretSite) OtherSite() CaretSite {
	if s.IsLeading() {
		return TrailingSite(s.Index - 1)
	}
	return LeadingSite(s.Index + 1)
}

// String returns a description like "Leading(3)".
func (s CaretSite) String() string {
	return fmt.Sprintf("%s(%d)", s.Edge, s.Index)
}

// CaretPolicy picks the strong caret of two sites sharing an insertion
// offset.
type CaretPolicy func(a, b CaretSite, l *Layout) CaretSite

// DefaultCaretPolicy prefers the site whose character has the lower bidi
// level, and the leading edge when the levels are equal.
func DefaultCaretPolicy(a, b CaretSite, l *Layout) CaretSite {
	la, lb := l.level(a.Index), l.level(b.Index)
	if la == lb {
		if b.IsLeading() && !a.IsLeading() {
			return b
		}
		return a
	}
	if la < lb {
		return a
	}
	return b
}

func (l *Layout) checkSite(op string, s CaretSite) error {
	return checkRange(op, s.Index, -1, l.CharacterCount())
}

// siteToCaret returns the visual caret position, in [0, n], of s.
func (l *Layout) siteToCaret(s CaretSite) int {
	ln := l.line
	n := ln.CharacterCount()
	switch {
	case s.Index < 0:
		if ln.IsLeftToRight() {
			return 0
		}
		return n
	case s.Index >= n:
		if ln.IsLeftToRight() {
			return n
		}
		return 0
	}
	v := ln.LogicalToVisual(s.Index)
	if s.IsLeading() != ln.IsCharLTR(s.Index) {
		v++
	}
	return v
}

// caretToSite returns the site at visual caret position c.
func (l *Layout) caretToSite(c int) CaretSite {
	ln := l.line
	n := ln.CharacterCount()
	if c == 0 || c == n {
		if (c == n) == ln.IsLeftToRight() {
			return LeadingSite(n)
		}
		return TrailingSite(-1)
	}
	i := ln.VisualToLogical(c)
	if ln.IsCharLTR(i) {
		return LeadingSite(i)
	}
	return TrailingSite(i)
}

// caretValid reports whether a caret may sit at visual position c.
func (l *Layout) caretValid(c int) bool {
	ln := l.line
	n := ln.CharacterCount()
	if c == 0 || c == n {
		return true
	}
	i := ln.VisualToLogical(c)
	if !ln.IsCharLTR(i) {
		i = ln.VisualToLogical(c - 1)
		if ln.IsCharLTR(i) {
			return true
		}
	}
	return ln.caretValid(i)
}

// caretInfo returns the x position on the baseline and the slope of the
// caret at visual position c. The caret edge of each adjoining character
// is averaged at the top and bottom of bounds.
func (l *Layout) caretInfo(c int, bounds Rect) (x, slope float64) {
	ln := l.line
	n := ln.CharacterCount()
	edge := func(i int, pos float64) (top, bottom float64) {
		s := ln.CharSlope(i)
		if s == 0 {
			return pos, pos
		}
		pos += s * ln.CharY(i)
		return pos + s*ln.CharAscent(i), pos - s*ln.CharDescent(i)
	}

	var top1, top2, bottom1, bottom2 float64
	switch c {
	case 0:
		i := ln.VisualToLogical(0)
		top1, bottom1 = edge(i, ln.CharX(i))
		top2, bottom2 = top1, bottom1
	case n:
		i := ln.VisualToLogical(n - 1)
		top1, bottom1 = edge(i, ln.CharX(i)+ln.CharAdvance(i))
		top2, bottom2 = top1, bottom1
	default:
		i := ln.VisualToLogical(c - 1)
		top1, bottom1 = edge(i, ln.CharX(i)+ln.CharAdvance(i))
		j := ln.VisualToLogical(c)
		top2, bottom2 = edge(j, ln.CharX(j))
	}
	top, bottom := (top1+top2)/2, (bottom1+bottom2)/2
	slope = (top - bottom) / bounds.Height()
	return top + slope*bounds.MinY, slope
}

// caretPoints returns the caret at visual position c as a polyline from
// the top of bounds to the bottom. With clip set, the caret is kept inside
// bounds horizontally.
func (l *Layout) caretPoints(c int, bounds Rect, clip bool) []Point {
	pos, slope := l.caretInfo(c, bounds)
	xAt := func(y float64) float64 { return pos - slope*y }
	if !clip || slope == 0 {
		x := xAt(bounds.MinY)
		if clip {
			x = math.Max(bounds.MinX, math.Min(bounds.MaxX, x))
		}
		return []Point{{X: x, Y: bounds.MinY}, {X: xAt(bounds.MaxY), Y: bounds.MaxY}}
	}
	ys := []float64{bounds.MinY, bounds.MaxY}
	for _, x := range []float64{bounds.MinX, bounds.MaxX} {
		y := (pos - x) / slope
		if y > bounds.MinY && y < bounds.MaxY {
			ys = append(ys, y)
		}
	}
	slices.Sort(ys)
	pts := make([]Point, 0, len(ys))
	for _, y := range ys {
		p := Point{X: math.Max(bounds.MinX, math.Min(bounds.MaxX, xAt(y))), Y: y}
		if len(pts) == 0 || pts[len(pts)-1] != p {
			pts = append(pts, p)
		}
	}
	return pts
}

func (l *Layout) caretSegment(c int, bounds Rect) Segment {
	pts := l.caretPoints(c, bounds, false)
	return Segment{A: l.line.path.PathToPoint(pts[0]), B: l.line.path.PathToPoint(pts[1])}
}

// CaretInfo returns the x position where the caret at s crosses the
// baseline and its slope, the horizontal shift per unit of height.
func (l *Layout) CaretInfo(s CaretSite) (x, slope float64, err error) {
	if err := l.checkSite("CaretInfo", s); err != nil {
		return 0, 0, err
	}
	x, slope = l.caretInfo(l.siteToCaret(s), l.NaturalBounds())
	return x, slope, nil
}

// CaretShape returns the caret at s spanning bounds. Empty bounds mean the
// natural bounds.
func (l *Layout) CaretShape(s CaretSite, bounds Rect) (Segment, error) {
	if err := l.checkSite("CaretShape", s); err != nil {
		return Segment{}, err
	}
	return l.caretSegment(l.siteToCaret(s), l.boundsOr(bounds)), nil
}

// CaretShapes returns the carets at insertion offset o. At a direction
// boundary the two sides of o are drawn apart; policy, or the layout's
// policy when nil, decides which of them is strong.
func (l *Layout) CaretShapes(o int, bounds Rect, policy CaretPolicy) (strong, weak Segment, hasWeak bool, err error) {
	if err := checkRange("CaretShapes", o, 0, l.CharacterCount()); err != nil {
		return Segment{}, Segment{}, false, err
	}
	bounds = l.boundsOr(bounds)
	a := AfterOffset(o)
	b := a.OtherSite()
	ca, cb := l.siteToCaret(a), l.siteToCaret(b)
	sa := l.caretSegment(ca, bounds)
	if ca == cb {
		return sa, Segment{}, false, nil
	}
	sb := l.caretSegment(cb, bounds)
	if l.pickStrong(a, b, policy) == a {
		return sa, sb, true, nil
	}
	return sb, sa, true, nil
}

func (l *Layout) pickStrong(a, b CaretSite, policy CaretPolicy) CaretSite {
	if policy == nil {
		policy = l.cfg.policy
	}
	return policy(a, b, l)
}

// StrongCaret returns the strong site at insertion offset o.
func (l *Layout) StrongCaret(o int) (CaretSite, error) {
	if err := checkRange("StrongCaret", o, 0, l.CharacterCount()); err != nil {
		return CaretSite{}, err
	}
	a := AfterOffset(o)
	return l.pickStrong(a, a.OtherSite(), nil), nil
}

// NextRightHit returns the next valid caret site to the right of s. ok is
// false when s is already at the right end of the line.
func (l *Layout) NextRightHit(s CaretSite) (next CaretSite, ok bool, err error) {
	if err := l.checkSite("NextRightHit", s); err != nil {
		return CaretSite{}, false, err
	}
	c := l.siteToCaret(s)
	if c == l.CharacterCount() {
		return CaretSite{}, false, nil
	}
	for c++; !l.caretValid(c); c++ {
	}
	return l.caretToSite(c), true, nil
}

// NextLeftHit returns the next valid caret site to the left of s. ok is
// false when s is already at the left end of the line.
func (l *Layout) NextLeftHit(s CaretSite) (next CaretSite, ok bool, err error) {
	if err := l.checkSite("NextLeftHit", s); err != nil {
		return CaretSite{}, false, err
	}
	c := l.siteToCaret(s)
	if c == 0 {
		return CaretSite{}, false, nil
	}
	for c--; !l.caretValid(c); c-- {
	}
	return l.caretToSite(c), true, nil
}

// VisualOtherHit returns the site drawn at the same place as s on the
// other side of the visually adjacent character boundary.
func (l *Layout) VisualOtherHit(s CaretSite) (CaretSite, error) {
	if err := l.checkSite("VisualOtherHit", s); err != nil {
		return CaretSite{}, err
	}
	ln := l.line
	n := ln.CharacterCount()
	ltr := ln.IsLeftToRight()

	var idx int
	var leading bool
	if s.Index == -1 || s.Index == n {
		v := n - 1
		if ltr == (s.Index == -1) {
			v = 0
		}
		idx = ln.VisualToLogical(v)
		if ltr == (s.Index == -1) {
			leading = ln.IsCharLTR(idx)
		} else {
			leading = !ln.IsCharLTR(idx)
		}
	} else {
		v := ln.LogicalToVisual(s.Index)
		right := ln.IsCharLTR(s.Index) != s.IsLeading()
		if right {
			v++
		} else {
			v--
		}
		if v >= 0 && v < n {
			idx = ln.VisualToLogical(v)
			leading = right == ln.IsCharLTR(idx)
		} else {
			idx = -1
			if right == ltr {
				idx = n
			}
			leading = idx == n
		}
	}
	if leading {
		return LeadingSite(idx), nil
	}
	return TrailingSite(idx), nil
}
