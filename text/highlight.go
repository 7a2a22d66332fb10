package text

// boundingPolygon joins two carets, each running top to bottom, into the
// polygon between them.
func boundingPolygon(a, b []Point) Polygon {
	poly := make(Polygon, 0, len(a)+len(b))
	poly = append(poly, a...)
	for i := len(b) - 1; i >= 0; i-- {
		poly = append(poly, b[i])
	}
	return poly
}

func (l *Layout) caretSpan(c0, c1 int, bounds Rect) Polygon {
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	return boundingPolygon(l.caretPoints(c0, bounds, true), l.caretPoints(c1, bounds, true))
}

// leftEdge is the area between the left of bounds and the caret at the
// line's left end.
func (l *Layout) leftEdge(bounds Rect) Polygon {
	edge := []Point{{X: bounds.MinX, Y: bounds.MinY}, {X: bounds.MinX, Y: bounds.MaxY}}
	return boundingPolygon(edge, l.caretPoints(0, bounds, true))
}

// rightEdge is the area between the caret at the line's right end and the
// right of bounds.
func (l *Layout) rightEdge(bounds Rect) Polygon {
	edge := []Point{{X: bounds.MaxX, Y: bounds.MinY}, {X: bounds.MaxX, Y: bounds.MaxY}}
	return boundingPolygon(l.caretPoints(l.CharacterCount(), bounds, true), edge)
}

func appendNonEmpty(r Region, p Polygon) Region {
	if p.Bounds().Empty() {
		return r
	}
	return append(r, p)
}

func (l *Layout) mapRegion(r Region) Region {
	if l.line.path == nil {
		return r
	}
	for i, p := range r {
		r[i] = l.line.path.mapPolygon(p)
	}
	return r
}

// VisualHighlightShape returns the area between two caret sites as drawn:
// one contiguous band, extended to the edge of bounds when a site sits at
// an end of the line. Empty bounds mean the natural bounds.
func (l *Layout) VisualHighlightShape(first, second CaretSite, bounds Rect) (Region, error) {
	if err := l.checkSite("VisualHighlightShape", first); err != nil {
		return nil, err
	}
	if err := l.checkSite("VisualHighlightShape", second); err != nil {
		return nil, err
	}
	bounds = l.boundsOr(bounds)
	c0, c1 := l.siteToCaret(first), l.siteToCaret(second)
	r := Region{l.caretSpan(c0, c1, bounds)}
	n := l.CharacterCount()
	if c0 == 0 || c1 == 0 {
		r = appendNonEmpty(r, l.leftEdge(bounds))
	}
	if c0 == n || c1 == n {
		r = appendNonEmpty(r, l.rightEdge(bounds))
	}
	return l.mapRegion(r), nil
}

// LogicalHighlightShape returns the area covering the characters between
// two insertion offsets. Mixed-direction ranges may produce several
// disjoint polygons. Empty bounds mean the natural bounds.
func (l *Layout) LogicalHighlightShape(first, second int, bounds Rect) (Region, error) {
	n := l.CharacterCount()
	if err := checkRange("LogicalHighlightShape", first, 0, n); err != nil {
		return nil, err
	}
	if err := checkRange("LogicalHighlightShape", second, 0, n); err != nil {
		return nil, err
	}
	if first > second {
		first, second = second, first
	}
	bounds = l.boundsOr(bounds)
	ln := l.line

	var carets []int
	if first < second {
		for i := first; i < second; {
			carets = append(carets, l.siteToCaret(LeadingSite(i)))
			ltr := ln.IsCharLTR(i)
			for i++; i < second && ln.IsCharLTR(i) == ltr; i++ {
			}
			carets = append(carets, l.siteToCaret(TrailingSite(i-1)))
		}
	} else {
		c := l.siteToCaret(LeadingSite(first))
		carets = []int{c, c}
	}

	var r Region
	for i := 0; i < len(carets); i += 2 {
		r = append(r, l.caretSpan(carets[i], carets[i+1], bounds))
	}
	if first != second {
		ltr := ln.IsLeftToRight()
		if (ltr && first == 0) || (!ltr && second == n) {
			r = appendNonEmpty(r, l.leftEdge(bounds))
		}
		if (ltr && second == n) || (!ltr && first == 0) {
			r = appendNonEmpty(r, l.rightEdge(bounds))
		}
	}
	return l.mapRegion(r), nil
}

// LogicalRangesForVisualSelection returns the logical ranges covered by the
// visual selection between two sites as [start, limit) pairs in increasing
// order.
func (l *Layout) LogicalRangesForVisualSelection(first, second CaretSite) ([]int, error) {
	if err := l.checkSite("LogicalRangesForVisualSelection", first); err != nil {
		return nil, err
	}
	if err := l.checkSite("LogicalRangesForVisualSelection", second); err != nil {
		return nil, err
	}
	n := l.CharacterCount()
	c0, c1 := l.siteToCaret(first), l.siteToCaret(second)
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	included := make([]bool, n)
	for v := c0; v < c1; v++ {
		included[l.line.VisualToLogical(v)] = true
	}
	var ranges []int
	in := false
	for i, inc := range included {
		if inc != in {
			ranges = append(ranges, i)
			in = inc
		}
	}
	if in {
		ranges = append(ranges, n)
	}
	return ranges, nil
}

// BlackBoxBounds returns the slanted cells of characters [first, limit),
// one polygon per character with a nonzero advance.
func (l *Layout) BlackBoxBounds(first, limit int) (Region, error) {
	n := l.CharacterCount()
	if err := checkRange("BlackBoxBounds", first, 0, n); err != nil {
		return nil, err
	}
	if err := checkRange("BlackBoxBounds", limit, first, n); err != nil {
		return nil, err
	}
	ln := l.line
	var r Region
	for i := first; i < limit; i++ {
		adv := ln.CharAdvance(i)
		if adv == 0 {
			continue
		}
		x, y := ln.CharX(i), ln.CharY(i)
		s := ln.CharSlope(i)
		top, bottom := y-ln.CharAscent(i), y+ln.CharDescent(i)
		xt := x - s*(top-y)
		xb := x - s*(bottom-y)
		r = append(r, Polygon{
			{X: xt, Y: top}, {X: xt + adv, Y: top},
			{X: xb + adv, Y: bottom}, {X: xb, Y: bottom},
		})
	}
	return l.mapRegion(r), nil
}
