package text

import (
	"fmt"
	"math"
)

// Paragraph is a run of styled characters: the owning character buffer
// plus the style and decoration of every character, and the
// paragraph-level attributes bidi and justification read.
//
// Styles are edited in place with SetStyle and SetDecoration before the
// paragraph is handed to a BreakCursor. Character edits go through
// InsertRune and DeleteRune, which return a new Paragraph with a higher
// generation so a cursor can tell which buffer it has seen.
type Paragraph struct {
	runes  []rune
	styles []StyleValue
	decos  []Decoration

	base          BaseDirection
	justification float64
	digits        DigitShaper

	generation uint64
}

// ParagraphOption configures a Paragraph.
type ParagraphOption func(*Paragraph)

// WithBaseDirection sets the paragraph's base direction. The default is
// BaseAuto.
func WithBaseDirection(d BaseDirection) ParagraphOption {
	return func(p *Paragraph) {
		p.base = d
	}
}

// WithJustification sets how much of the available space justification may
// distribute, clamped to [0, 1]. The default is 1; 0 disables it.
func WithJustification(ratio float64) ParagraphOption {
	return func(p *Paragraph) {
		p.justification = clampRatio(ratio)
	}
}

// WithDigitShaper sets the transform applied to digits before layout.
func WithDigitShaper(ds DigitShaper) ParagraphOption {
	return func(p *Paragraph) {
		p.digits = ds
	}
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	return math.Max(0, math.Min(1, r))
}

// NewParagraph creates a paragraph of s where every character has style.
// It returns ErrInvalidArgument if s is empty or style is the zero value.
func NewParagraph(s string, style StyleValue, opts ...ParagraphOption) (*Paragraph, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: empty paragraph", ErrInvalidArgument)
	}
	if style.Kind() == StyleNone {
		return nil, fmt.Errorf("%w: paragraph style has no face or graphic", ErrInvalidArgument)
	}
	p := &Paragraph{
		runes:         runes,
		styles:        make([]StyleValue, len(runes)),
		decos:         make([]Decoration, len(runes)),
		justification: 1,
	}
	for i := range p.styles {
		p.styles[i] = style
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SetStyle sets the style of characters [start, end).
func (p *Paragraph) SetStyle(start, end int, style StyleValue) error {
	if err := p.checkSpan("SetStyle", start, end); err != nil {
		return err
	}
	if style.Kind() == StyleNone {
		return fmt.Errorf("%w: style has no face or graphic", ErrInvalidArgument)
	}
	for i := start; i < end; i++ {
		p.styles[i] = style
	}
	return nil
}

// SetDecoration sets the decoration of characters [start, end).
func (p *Paragraph) SetDecoration(start, end int, d Decoration) error {
	if err := p.checkSpan("SetDecoration", start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		p.decos[i] = d
	}
	return nil
}

func (p *Paragraph) checkSpan(op string, start, end int) error {
	if err := checkRange(op, start, 0, len(p.runes)); err != nil {
		return err
	}
	return checkRange(op, end, start, len(p.runes))
}

// InsertRune returns a copy of p with r inserted before position pos.
// The new character takes the style and decoration of the character before
// it, or of the first character when pos is 0.
func (p *Paragraph) InsertRune(pos int, r rune) (*Paragraph, error) {
	if err := checkRange("InsertRune", pos, 0, len(p.runes)); err != nil {
		return nil, err
	}
	from := max(pos-1, 0)
	q := p.cloneAttrs()
	q.runes = insertAt(p.runes, pos, r)
	q.styles = insertAt(p.styles, pos, p.styles[from])
	q.decos = insertAt(p.decos, pos, p.decos[from])
	return q, nil
}

// DeleteRune returns a copy of p without the character at pos. Deleting the
// last remaining character is an error.
func (p *Paragraph) DeleteRune(pos int) (*Paragraph, error) {
	if err := checkRange("DeleteRune", pos, 0, len(p.runes)-1); err != nil {
		return nil, err
	}
	if len(p.runes) == 1 {
		return nil, fmt.Errorf("%w: cannot delete the only character", ErrInvalidArgument)
	}
	q := p.cloneAttrs()
	q.runes = deleteAt(p.runes, pos)
	q.styles = deleteAt(p.styles, pos)
	q.decos = deleteAt(p.decos, pos)
	return q, nil
}

func (p *Paragraph) cloneAttrs() *Paragraph {
	return &Paragraph{
		base:          p.base,
		justification: p.justification,
		digits:        p.digits,
		generation:    p.generation + 1,
	}
}

func insertAt[T any](s []T, pos int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, v)
	return append(out, s[pos:]...)
}

func deleteAt[T any](s []T, pos int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:pos]...)
	return append(out, s[pos+1:]...)
}

// Len returns the number of characters.
func (p *Paragraph) Len() int { return len(p.runes) }

// Rune returns the character at i.
func (p *Paragraph) Rune(i int) rune { return p.runes[i] }

// String returns the paragraph text.
func (p *Paragraph) String() string { return string(p.runes) }

// StyleAt returns the style of the character at i.
func (p *Paragraph) StyleAt(i int) StyleValue { return p.styles[i] }

// DecorationAt returns the decoration of the character at i.
func (p *Paragraph) DecorationAt(i int) Decoration { return p.decos[i] }

// BaseDirection returns the requested base direction.
func (p *Paragraph) BaseDirection() BaseDirection { return p.base }

// Justification returns the justification ratio in [0, 1].
func (p *Paragraph) Justification() float64 { return p.justification }

// DigitShaper returns the digit transform, or nil.
func (p *Paragraph) DigitShaper() DigitShaper { return p.digits }

// Generation returns the edit generation; every InsertRune or DeleteRune
// copy is one higher than its source.
func (p *Paragraph) Generation() uint64 { return p.generation }
