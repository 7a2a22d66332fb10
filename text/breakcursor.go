package text

import "fmt"

// BreakCursor walks a paragraph line by line, choosing each line break at
// a line break opportunity so the line fits a wrapping width.
//
// A BreakCursor is not safe for concurrent use.
type BreakCursor struct {
	m   *Measurer
	pos int
}

// NewBreakCursor returns a cursor at the start of p.
func NewBreakCursor(p *Paragraph, opts ...CursorOption) (*BreakCursor, error) {
	m, err := NewMeasurer(p, opts...)
	if err != nil {
		return nil, err
	}
	return &BreakCursor{m: m}, nil
}

// Measurer returns the measurer the cursor lays lines out with.
func (c *BreakCursor) Measurer() *Measurer { return c.m }

// Position returns the offset the next line starts at.
func (c *BreakCursor) Position() int { return c.pos }

// SetPosition moves the cursor to pos.
func (c *BreakCursor) SetPosition(pos int) error {
	if err := checkRange("SetPosition", pos, 0, c.m.Len()); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// NextBreakOffset returns where the line starting at the cursor should end
// to fit wrapWidth, without moving the cursor. A line ends after the
// whitespace following its last fitting word. When not even the first word
// fits, the result is the cursor position if requireWholeWord is set and
// otherwise the last fitting character, at least one character on. The
// result never exceeds hardLimit, which must lie after the cursor.
func (c *BreakCursor) NextBreakOffset(wrapWidth float64, hardLimit int, requireWholeWord bool) (int, error) {
	n := c.m.Len()
	next := c.pos
	if c.pos < n {
		if hardLimit <= c.pos {
			return 0, fmt.Errorf("%w: hard limit %d not after position %d", ErrInvalidArgument, hardLimit, c.pos)
		}
		maxIdx, err := c.m.LineBreakIndex(c.pos, wrapWidth)
		if err != nil {
			return 0, err
		}
		b := c.m.breaks()
		switch {
		case maxIdx == n:
			next = n
		case isWhitespace(c.m.text[maxIdx]):
			next = b.Following(maxIdx)
			if next < 0 {
				next = n
			}
		default:
			next = b.Preceding(maxIdx + 1)
			if next <= c.pos {
				if requireWholeWord {
					next = c.pos
				} else {
					next = max(c.pos+1, maxIdx)
				}
			}
		}
	}
	return min(next, hardLimit), nil
}

// NextLayout returns the next line fitting wrapWidth and advances the
// cursor past it. It returns nil at the end of the paragraph.
func (c *BreakCursor) NextLayout(wrapWidth float64) (*Layout, error) {
	return c.NextLayoutLimit(wrapWidth, c.m.Len(), false)
}

// NextLayoutLimit is NextLayout with a hard limit on the line end. With
// requireWholeWord set it returns nil when the first word does not fit.
func (c *BreakCursor) NextLayoutLimit(wrapWidth float64, hardLimit int, requireWholeWord bool) (*Layout, error) {
	if c.pos >= c.m.Len() {
		return nil, nil
	}
	limit, err := c.NextBreakOffset(wrapWidth, hardLimit, requireWholeWord)
	if err != nil {
		return nil, err
	}
	if limit == c.pos {
		return nil, nil
	}
	layout, err := c.m.Layout(c.pos, limit)
	if err != nil {
		return nil, err
	}
	c.pos = limit
	return layout, nil
}

// InsertChar switches the cursor to p, which must be its paragraph with
// one character inserted at pos, and moves the cursor to the start.
// Layouts already returned are unaffected.
func (c *BreakCursor) InsertChar(p *Paragraph, pos int) error {
	if err := c.m.InsertChar(p, pos); err != nil {
		return err
	}
	c.pos = 0
	return nil
}

// DeleteChar switches the cursor to p, which must be its paragraph with
// the character at pos removed, and moves the cursor to the start.
func (c *BreakCursor) DeleteChar(p *Paragraph, pos int) error {
	if err := c.m.DeleteChar(p, pos); err != nil {
		return err
	}
	c.pos = 0
	return nil
}
