package text

import (
	"slices"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textline"
)

// BidiEngine resolves embedding levels for a paragraph.
type BidiEngine interface {
	// Levels returns the embedding level of every character of text and
	// the resolved paragraph level (0 left-to-right, 1 right-to-left).
	Levels(text []rune, base BaseDirection) (levels []int, paragraphLevel int)
}

// XTextBidi is a BidiEngine backed by golang.org/x/text/unicode/bidi.
//
// The x/text ordering reports runs by direction only, so levels are
// reconstructed: right-to-left runs get level 1 and left-to-right runs get
// the next even level above the paragraph. Deeper explicit embeddings
// collapse onto those levels.
type XTextBidi struct{}

var _ BidiEngine = XTextBidi{}

// lrm forces a left-to-right paragraph; x/text only forces right-to-left.
const lrm = '\u200E'

// Levels implements BidiEngine.
func (XTextBidi) Levels(text []rune, base BaseDirection) ([]int, int) {
	paraLevel := paragraphLevel(text, base)
	levels := make([]int, len(text))
	if paraLevel == 0 && !RequiresBidi(text) {
		return levels, 0
	}
	for start := 0; start < len(text); {
		end := start
		for end < len(text) && bidiClass(text[end]) != bidi.B {
			end++
		}
		if end < len(text) {
			end++ // the separator ends its paragraph
		}
		resolveSegment(text, start, end, paraLevel, levels)
		start = end
	}
	return levels, paraLevel
}

func resolveSegment(text []rune, start, end, paraLevel int, levels []int) {
	seg := text[start:end]
	var (
		p      bidi.Paragraph
		s      string
		opts   []bidi.Option
		prefix int
	)
	if paraLevel == 1 {
		s = string(seg)
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	} else {
		s = string(lrm) + string(seg)
		prefix = 1
	}
	fill := func(lvl int) {
		for i := start; i < end; i++ {
			levels[i] = lvl
		}
	}
	if _, err := p.SetString(s, opts...); err != nil {
		textline.Logger().Warn("text: bidi resolution failed", "err", err)
		fill(paraLevel)
		return
	}
	order, err := p.Order()
	if err != nil {
		textline.Logger().Warn("text: bidi ordering failed", "err", err)
		fill(paraLevel)
		return
	}
	fill(paraLevel)
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		rs, re := run.Pos()
		rs = max(rs-prefix, 0)
		re = min(re-prefix, len(seg)-1)
		if rs > re {
			continue
		}
		lvl := runLevel(text, start+rs, start+re+1, paraLevel, run.Direction() == bidi.RightToLeft)
		for j := rs; j <= re; j++ {
			levels[start+j] = lvl
		}
	}
	if bidiClass(seg[len(seg)-1]) == bidi.B {
		levels[end-1] = paraLevel
	}
}

// runLevel reconstructs the level of a resolved run [start, end).
func runLevel(text []rune, start, end, paraLevel int, rtl bool) int {
	if rtl {
		return 1
	}
	if paraLevel == 1 {
		return 2
	}
	// Numbers after right-to-left text sit one level above it.
	hasNumber, hasArabicNumber := false, false
	for _, r := range text[start:end] {
		switch bidiClass(r) {
		case bidi.L:
			return 0
		case bidi.EN:
			hasNumber = true
		case bidi.AN:
			hasArabicNumber = true
		}
	}
	if hasArabicNumber {
		return 2
	}
	if hasNumber && precedingStrongRTL(text, start) {
		return 2
	}
	return 0
}

func precedingStrongRTL(text []rune, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch bidiClass(text[i]) {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

func bidiClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// paragraphLevel resolves the base direction to a level: forced values map
// directly, auto takes the first strong character.
func paragraphLevel(text []rune, base BaseDirection) int {
	switch base {
	case BaseLTR:
		return 0
	case BaseRTL:
		return 1
	}
	for _, r := range text {
		switch bidiClass(r) {
		case bidi.L:
			return 0
		case bidi.R, bidi.AL:
			return 1
		}
	}
	return 0
}

// DetectBaseDirection returns the direction of the first strong character
// of text, or BaseLTR when there is none.
func DetectBaseDirection(text []rune) BaseDirection {
	if paragraphLevel(text, BaseAuto) == 1 {
		return BaseRTL
	}
	return BaseLTR
}

// RequiresBidi reports whether any character of text can produce a
// right-to-left level.
func RequiresBidi(text []rune) bool {
	for _, r := range text {
		if requiresBidi(r) {
			return true
		}
	}
	return false
}

func requiresBidi(r rune) bool {
	switch bidiClass(r) {
	case bidi.R, bidi.AL, bidi.AN, bidi.RLE, bidi.RLO, bidi.RLI:
		return true
	default:
		return false
	}
}

// lineLevels applies rule L1 to the levels of one line: trailing
// whitespace, segment separators and the whitespace before them take the
// paragraph level. The returned slice is a copy; nil levels yield nil.
func lineLevels(text []rune, levels []int, paraLevel int) []int {
	if levels == nil {
		return nil
	}
	out := slices.Clone(levels)
	trailing := true
	for i := len(text) - 1; i >= 0; i-- {
		switch bidiClass(text[i]) {
		case bidi.S, bidi.B:
			out[i] = paraLevel
			trailing = true
		case bidi.WS, bidi.BN, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
			if trailing {
				out[i] = paraLevel
			}
		default:
			trailing = false
		}
	}
	return out
}

// visualOrder applies rule L2 and returns the logical index shown at each
// visual position. It returns nil when the order is the identity.
func visualOrder(levels []int) []int {
	if len(levels) == 0 {
		return nil
	}
	maxLevel, minLevel := levels[0], levels[0]
	for _, l := range levels {
		maxLevel = max(maxLevel, l)
		minLevel = min(minLevel, l)
	}
	lowestOdd := minLevel | 1
	if maxLevel < lowestOdd {
		return nil
	}
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	for lvl := maxLevel; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lvl {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	for i, v := range order {
		if i != v {
			return order
		}
	}
	return nil
}

// invertOrder returns the inverse permutation of order.
func invertOrder(order []int) []int {
	if order == nil {
		return nil
	}
	inv := make([]int, len(order))
	for i, v := range order {
		inv[v] = i
	}
	return inv
}
