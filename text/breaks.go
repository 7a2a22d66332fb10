package text

import (
	"sort"

	"github.com/go-text/typesetting/segmenter"
)

// BreakIterator answers queries about line-break boundaries of one text.
// Boundaries are character offsets; 0 and the text length are always
// boundaries.
type BreakIterator interface {
	// Following returns the first boundary after offset, or -1 if none.
	Following(offset int) int
	// Preceding returns the last boundary before offset, or -1 if none.
	Preceding(offset int) int
	// IsBoundary reports whether offset is a boundary.
	IsBoundary(offset int) bool
}

// BreakFactory creates a BreakIterator over text.
type BreakFactory func(text []rune) BreakIterator

// boundaryList is a BreakIterator over a sorted list of offsets.
type boundaryList []int

func (b boundaryList) Following(offset int) int {
	i := sort.SearchInts(b, offset+1)
	if i == len(b) {
		return -1
	}
	return b[i]
}

func (b boundaryList) Preceding(offset int) int {
	i := sort.SearchInts(b, offset) - 1
	if i < 0 {
		return -1
	}
	return b[i]
}

func (b boundaryList) IsBoundary(offset int) bool {
	i := sort.SearchInts(b, offset)
	return i < len(b) && b[i] == offset
}

// NewLineBreaks returns the Unicode line-break opportunities (UAX #14) of
// text, computed with the go-text segmenter.
func NewLineBreaks(text []rune) BreakIterator {
	bounds := boundaryList{0}
	if len(text) == 0 {
		return bounds
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.LineIterator()
	for it.Next() {
		line := it.Line()
		end := line.Offset + len(line.Text)
		if end > bounds[len(bounds)-1] {
			bounds = append(bounds, end)
		}
	}
	if bounds[len(bounds)-1] != len(text) {
		bounds = append(bounds, len(text))
	}
	return bounds
}

// graphemeStarts reports for every offset in [0, len(text)] whether a
// caret may sit there, that is whether it starts a grapheme cluster or is
// the end of the text.
func graphemeStarts(text []rune) []bool {
	starts := make([]bool, len(text)+1)
	starts[len(text)] = true
	if len(text) == 0 {
		return starts
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.GraphemeIterator()
	for it.Next() {
		starts[it.Grapheme().Offset] = true
	}
	return starts
}
