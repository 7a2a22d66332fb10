package text

import "math"

// HitTestChar returns the caret site nearest to (x, y) within the
// layout's natural bounds.
func (l *Layout) HitTestChar(x, y float64) CaretSite {
	return l.HitTestCharInBounds(x, y, Rect{})
}

// HitTestCharInBounds returns the caret site nearest to (x, y). Points left
// or right of bounds hit the corresponding end of the line. Inside, the
// nearest character centre wins, with distance along the baseline counting
// twice as much as across it; the side of the character's slanted centre
// line picks the edge. Empty bounds mean the natural bounds.
func (l *Layout) HitTestCharInBounds(x, y float64, bounds Rect) CaretSite {
	ln := l.line
	if ln.path != nil {
		p := ln.path.PointToPath(Point{X: x, Y: y})
		x, y = p.X, p.Y
	}
	bounds = l.boundsOr(bounds)
	n := ln.CharacterCount()
	switch {
	case x < bounds.MinX:
		if ln.IsLeftToRight() {
			return LeadingSite(0)
		}
		return TrailingSite(n - 1)
	case x >= bounds.MaxX:
		if ln.IsLeftToRight() {
			return TrailingSite(n - 1)
		}
		return LeadingSite(0)
	}

	best := math.Inf(1)
	index, trail := 0, -1
	var cx, cy, slope float64
	for i := range n {
		if !ln.caretValid(i) {
			continue
		}
		if trail == -1 {
			trail = i
		}
		a, d, s := ln.CharAscent(i), ln.CharDescent(i), ln.CharSlope(i)
		half := (a - d) / 2
		ccx := ln.CharX(i) + ln.CharAdvance(i)/2 + s*half
		ccy := ln.CharY(i) - half
		dist := math.Sqrt(4*(ccx-x)*(ccx-x) + (ccy-y)*(ccy-y))
		if dist < best {
			best = dist
			index, trail = i, -1
			cx, cy, slope = ccx, ccy, s
		}
	}
	if trail == -1 {
		trail = n
	}
	left := x < cx-(y-cy)*slope
	if ln.IsCharLTR(index) == left {
		return LeadingSite(index)
	}
	return TrailingSite(trail - 1)
}
