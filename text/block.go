package text

import (
	"math"
	"strings"
)

// Alignment specifies horizontal line alignment within a block.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignJustify stretches every line but the last of each paragraph to
	// the block width. Last lines follow the paragraph direction.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// BlockOptions configures LayoutText.
type BlockOptions struct {
	// MaxWidth is the maximum line width.
	// If 0, no line wrapping is performed (single-line paragraphs).
	MaxWidth float64

	// LineSpacing is a multiplier for the leading between lines.
	LineSpacing float64

	// Alignment specifies horizontal line alignment.
	Alignment Alignment

	// Direction is the base direction of every paragraph.
	Direction BaseDirection
}

// DefaultBlockOptions returns sensible default block options.
func DefaultBlockOptions() BlockOptions {
	return BlockOptions{
		MaxWidth:    0, // No wrapping
		LineSpacing: 1.0,
		Alignment:   AlignLeft,
		Direction:   BaseAuto,
	}
}

// BlockLine is one positioned line of a block. Layout is nil for an empty
// paragraph.
type BlockLine struct {
	Layout *Layout

	// X is the left edge of the line within the block.
	X float64

	// Y is the baseline of the line within the block.
	Y float64

	// Ascent and Descent are the line's vertical extent around Y.
	Ascent, Descent float64
}

// Block is a laid out multi-paragraph text.
type Block struct {
	Lines []BlockLine

	// Width is the maximum visible advance among all lines.
	Width float64

	// Height is the total height of all lines.
	Height float64
}

// LayoutText lays out text in one style. Hard line breaks start new
// paragraphs, each wrapped at opts.MaxWidth and aligned per opts.
func LayoutText(text string, style StyleValue, opts BlockOptions, cursorOpts ...CursorOption) (*Block, error) {
	if text == "" {
		return &Block{}, nil
	}
	if opts.LineSpacing <= 0 {
		opts.LineSpacing = 1.0
	}
	width := opts.MaxWidth
	if width <= 0 {
		width = math.Inf(1)
	}

	block := &Block{}
	place := func(bl BlockLine, leading float64) {
		if n := len(block.Lines); n == 0 {
			bl.Y = bl.Ascent
		} else {
			prev := block.Lines[n-1]
			bl.Y = prev.Y + prev.Descent + leading*opts.LineSpacing + bl.Ascent
		}
		block.Lines = append(block.Lines, bl)
	}

	prevLeading := 0.0
	for _, para := range splitParagraphs(text) {
		if para == "" {
			a, d, lead := styleExtent(style)
			place(BlockLine{Ascent: a, Descent: d}, prevLeading)
			prevLeading = lead
			continue
		}
		p, err := NewParagraph(para, style, WithBaseDirection(opts.Direction))
		if err != nil {
			return nil, err
		}
		cursor, err := NewBreakCursor(p, cursorOpts...)
		if err != nil {
			return nil, err
		}
		for {
			layout, err := cursor.NextLayout(width)
			if err != nil {
				return nil, err
			}
			if layout == nil {
				break
			}
			last := cursor.Position() == p.Len()
			if opts.Alignment == AlignJustify && !last && opts.MaxWidth > 0 {
				if layout, err = layout.JustifiedLayout(opts.MaxWidth); err != nil {
					return nil, err
				}
			}
			bl := BlockLine{
				Layout:  layout,
				X:       alignOffset(layout, opts, last),
				Ascent:  layout.Ascent(),
				Descent: layout.Descent(),
			}
			place(bl, prevLeading)
			prevLeading = layout.Leading()
			block.Width = max(block.Width, layout.VisibleAdvance())
		}
	}

	if n := len(block.Lines); n > 0 {
		last := block.Lines[n-1]
		block.Height = last.Y + last.Descent
	}
	return block, nil
}

// styleExtent returns the ascent, descent and leading of an empty line.
func styleExtent(style StyleValue) (ascent, descent, leading float64) {
	switch style.Kind() {
	case StyleFont:
		m := style.Face().Metrics()
		return m.Ascent, m.Descent, m.LineGap
	case StyleGraphic:
		g := style.Graphic()
		return g.Ascent, g.Descent, 0
	}
	return 0, 0, 0
}

// alignOffset returns the x offset of a line for the block alignment.
// Right-to-left lines hang their trailing whitespace off the left edge, so
// their visible part starts at Advance - VisibleAdvance.
func alignOffset(l *Layout, opts BlockOptions, last bool) float64 {
	if opts.MaxWidth <= 0 {
		return 0
	}
	visible := l.VisibleAdvance()
	lead := 0.0
	if !l.IsLeftToRight() {
		lead = l.Advance() - visible
	}
	space := opts.MaxWidth - visible
	switch opts.Alignment {
	case AlignCenter:
		return space/2 - lead
	case AlignRight:
		return space - lead
	case AlignJustify:
		if last && !l.IsLeftToRight() {
			return space - lead
		}
	}
	return -lead
}

// splitParagraphs splits text by hard line breaks.
func splitParagraphs(text string) []string {
	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Split(text, "\n")
}
