package text

import (
	"fmt"
	"math"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/text/justify"
)

// JustifiedLayout returns a copy of l stretched or squeezed towards width.
// Trailing whitespace is left alone, and only the layout's justification
// ratio of the difference is distributed. A layout with ratio zero is
// returned as is; a justified layout cannot be justified again.
func (l *Layout) JustifiedLayout(width float64) (*Layout, error) {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: justification width %v", ErrInvalidArgument, width)
	}
	if l.IsJustified() {
		return nil, ErrAlreadyJustified
	}
	if l.cfg.ratio == 0 {
		return l, nil
	}

	ln := l.line
	limit := ln.CharacterCount()
	for limit > 0 && ln.IsCharWhitespace(limit-1) {
		limit--
	}
	line, err := ln.justify(width, l.cfg.ratio, 0, limit, l.cfg.maxPasses)
	if err != nil {
		return nil, err
	}
	cfg := l.cfg
	cfg.ratio = justifiedRatio
	return &Layout{line: line, cfg: cfg}, nil
}

// justify distributes (width - advance of [start, limit)) * ratio over the
// characters of [start, limit), repeating while a whitespace advance had to
// be clamped, at most passes times.
func (l *Line) justify(width, ratio float64, start, limit, passes int) (*Line, error) {
	comps := append([]*Component(nil), l.comps...)
	n := len(comps)
	lineStart := l.start

	for pass := 1; ; pass++ {
		cur, err := l.withComponents(comps)
		if err != nil {
			return nil, err
		}
		delta := (width - cur.AdvanceBetween(start, limit)) * ratio

		// Records are laid out by visual component, one per character.
		positions := make([]int, n)
		count := 0
		for v := range n {
			ci := v
			if cur.compOrder != nil {
				ci = cur.compOrder[v]
			}
			positions[ci] = count
			count += comps[ci].Len()
		}
		records := make([]justify.Record, count)
		present := make([]bool, count)
		for ci, c := range comps {
			lo, hi := max(c.start, lineStart+start), min(c.end, lineStart+limit)
			for k, i := range c.visualChars() {
				if i < lo || i >= hi {
					continue
				}
				records[positions[ci]+k] = c.justificationRecord(i)
				present[positions[ci]+k] = true
			}
		}
		first, last := 0, count
		for first < last && !present[first] {
			first++
		}
		for last > first && !present[last-1] {
			last--
		}
		for i := first; i < last; i++ {
			if !present[i] {
				records[i] = justify.Record{GrowPriority: justify.PriorityNone, ShrinkPriority: justify.PriorityNone}
			}
		}

		deltas, err := justify.Justify(records, first, last, delta)
		if err != nil {
			return nil, fmt.Errorf("text: justify line: %w", err)
		}

		rejustify := false
		for ci, c := range comps {
			if c.end <= lineStart+start || c.start >= lineStart+limit {
				continue
			}
			p := positions[ci]
			nc, clamped := c.applyJustification(deltas[2*p : 2*(p+c.Len())])
			comps[ci] = nc
			rejustify = rejustify || clamped
		}

		if !rejustify || pass >= passes {
			out, err := l.withComponents(comps)
			if err != nil {
				return nil, err
			}
			if rejustify {
				textline.Logger().Debug("text: justification stopped with clamped whitespace",
					"passes", pass,
					"residual", (width-out.AdvanceBetween(start, limit))*ratio)
			}
			return out, nil
		}
		textline.Logger().Debug("text: rejustifying line", "pass", pass+1, "delta", delta)
	}
}
