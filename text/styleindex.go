package text

import (
	"fmt"
	"sort"

	"github.com/gogpu/textline"
)

// StyleIndex partitions a paragraph into runs of constant style and runs of
// constant decoration. Both tables are parallel arrays of run starts and
// values, each terminated by a sentinel start equal to the paragraph
// length.
//
// The index borrows the character buffer it was built over and records the
// generation of the paragraph it describes. It is patched only through the
// edit calls of the Measurer that owns the buffer.
type StyleIndex struct {
	text       []rune
	generation uint64
	base       BaseDirection

	styleStarts []int
	styles      []StyleValue

	decoStarts []int
	decos      []Decoration
}

// BuildStyleIndex scans p and records every position where the style or
// the decoration changes. Fallback faces are split into runs of the member
// face that renders each character.
func BuildStyleIndex(p *Paragraph) (*StyleIndex, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("%w: empty paragraph", ErrInvalidArgument)
	}
	return buildStyleIndex(p, p.runes), nil
}

func buildStyleIndex(p *Paragraph, text []rune) *StyleIndex {
	x := &StyleIndex{}
	x.rebuild(p, text)
	return x
}

func (x *StyleIndex) rebuild(p *Paragraph, text []rune) {
	x.text = text
	x.generation = p.generation
	x.base = p.base
	x.styleStarts = x.styleStarts[:0]
	x.styles = x.styles[:0]
	x.decoStarts = x.decoStarts[:0]
	x.decos = x.decos[:0]

	for i, r := range text {
		s := p.styles[i].resolve(r)
		if i == 0 || s != x.styles[len(x.styles)-1] {
			x.styleStarts = append(x.styleStarts, i)
			x.styles = append(x.styles, s)
		}
		d := p.decos[i]
		if i == 0 || d != x.decos[len(x.decos)-1] {
			x.decoStarts = append(x.decoStarts, i)
			x.decos = append(x.decos, d)
		}
	}
	x.styleStarts = append(x.styleStarts, len(text))
	x.decoStarts = append(x.decoStarts, len(text))
}

// Len returns the number of characters covered.
func (x *StyleIndex) Len() int { return len(x.text) }

// Generation returns the paragraph generation the index describes.
func (x *StyleIndex) Generation() uint64 { return x.generation }

// BaseDirection returns the base direction of the indexed paragraph.
func (x *StyleIndex) BaseDirection() BaseDirection { return x.base }

// runAt returns the run of starts containing pos. starts ends with a
// sentinel, so the result indexes the value table.
func runAt(starts []int, pos int) int {
	i := sort.SearchInts(starts, pos+1) - 1
	return max(0, min(i, len(starts)-2))
}

// RunLimit returns the first position after pos at which the style or the
// decoration changes, or Len when neither does.
func (x *StyleIndex) RunLimit(pos int) int {
	if pos >= x.Len() {
		return x.Len()
	}
	s := x.styleStarts[runAt(x.styleStarts, pos)+1]
	d := x.decoStarts[runAt(x.decoStarts, pos)+1]
	return min(s, d)
}

// StyleAt returns the style at pos. Positions outside the paragraph are
// clamped to it.
func (x *StyleIndex) StyleAt(pos int) StyleValue {
	return x.styles[runAt(x.styleStarts, pos)]
}

// DecorationAt returns the decoration at pos. Positions outside the
// paragraph are clamped to it.
func (x *StyleIndex) DecorationAt(pos int) Decoration {
	return x.decos[runAt(x.decoStarts, pos)]
}

// insertChar updates the index after p gained the character text[pos].
// When the new character continues the run before it, the run tables are
// shifted; otherwise the index is rebuilt.
func (x *StyleIndex) insertChar(p *Paragraph, text []rune, pos int) {
	if p.Len() != x.Len()+1 || len(text) != p.Len() {
		textline.Logger().Debug("text: style index rebuilt", "op", "insert", "reason", "length mismatch")
		x.rebuild(p, text)
		return
	}
	ref := max(pos-1, 0)
	if p.styles[pos].resolve(text[pos]) != x.StyleAt(ref) || p.decos[pos] != x.DecorationAt(ref) {
		textline.Logger().Debug("text: style index rebuilt", "op", "insert", "pos", pos)
		x.rebuild(p, text)
		return
	}
	shiftStarts(x.styleStarts, ref, 1)
	shiftStarts(x.decoStarts, ref, 1)
	x.text = text
	x.generation = p.generation
	textline.Logger().Debug("text: style index shifted", "op", "insert", "pos", pos)
}

// deleteChar updates the index after p lost the character at pos. When no
// run consisted of that character alone, the run tables are shifted;
// otherwise the index is rebuilt so neighbouring runs can merge.
func (x *StyleIndex) deleteChar(p *Paragraph, text []rune, pos int) {
	if p.Len() != x.Len()-1 || len(text) != p.Len() {
		textline.Logger().Debug("text: style index rebuilt", "op", "delete", "reason", "length mismatch")
		x.rebuild(p, text)
		return
	}
	if singleCharRun(x.styleStarts, pos) || singleCharRun(x.decoStarts, pos) {
		textline.Logger().Debug("text: style index rebuilt", "op", "delete", "pos", pos)
		x.rebuild(p, text)
		return
	}
	shiftStarts(x.styleStarts, pos, -1)
	shiftStarts(x.decoStarts, pos, -1)
	x.text = text
	x.generation = p.generation
	textline.Logger().Debug("text: style index shifted", "op", "delete", "pos", pos)
}

// shiftStarts adds delta to every start after pos, sentinel included.
func shiftStarts(starts []int, pos, delta int) {
	for i := range starts {
		if starts[i] > pos {
			starts[i] += delta
		}
	}
}

func singleCharRun(starts []int, pos int) bool {
	i := runAt(starts, pos)
	return starts[i+1]-starts[i] == 1
}
