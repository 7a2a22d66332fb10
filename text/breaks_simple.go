package text

import "unicode"

// WrapMode specifies which break opportunities the simplified break
// iterator reports.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries; the break cursor falls back
	// to character boundaries for words wider than the line.
	WrapWordChar WrapMode = iota

	// WrapNone reports no opportunities except the text ends.
	WrapNone

	// WrapWord breaks at word boundaries only.
	WrapWord

	// WrapChar breaks at character boundaries.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// BreakClass represents Unicode line breaking classes (UAX #14 simplified).
type BreakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther BreakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before/after).
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) BreakClass {
	switch r {
	case ' ', '\t', '\u3000':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// NewSimpleBreaks returns a BreakFactory using a small rule set instead of
// the full UAX #14 tables. It is cheaper than NewLineBreaks and predictable
// for tests and plain Latin text.
func NewSimpleBreaks(mode WrapMode) BreakFactory {
	return func(text []rune) BreakIterator {
		bounds := boundaryList{0}
		if mode != WrapNone {
			for i := 1; i < len(text); i++ {
				if canBreakBefore(text, i, mode) {
					bounds = append(bounds, i)
				}
			}
		}
		if len(text) > 0 {
			bounds = append(bounds, len(text))
		}
		return bounds
	}
}

// canBreakBefore reports whether a line may start at text[i].
func canBreakBefore(text []rune, i int, mode WrapMode) bool {
	prev, curr := text[i-1], text[i]
	prevClass, currClass := classifyRune(prev), classifyRune(curr)

	switch {
	case prev == '\n':
		return true
	case currClass == breakClose:
		return false
	case prevClass == breakOpen:
		return false
	case prevClass == breakZero:
		return true
	}
	if mode == WrapChar {
		return !unicode.Is(unicode.Mn, curr)
	}
	return wordBreak(prev, curr, prevClass, currClass)
}

// wordBreak determines break opportunity for word-based wrapping.
func wordBreak(prev, curr rune, prevClass, currClass BreakClass) bool {
	switch {
	case prevClass == breakSpace:
		return currClass != breakSpace
	case prevClass == breakHyphen && currClass != breakHyphen:
		return true
	case currClass == breakHyphen:
		return false
	case currClass == breakIdeographic:
		return true
	case prevClass == breakIdeographic && currClass != breakClose:
		return true
	}
	return isBreakBetweenCategories(prev, curr)
}

// isBreakBetweenCategories checks for breaks between different character categories.
func isBreakBetweenCategories(prev, curr rune) bool {
	// Break before punctuation after letters/digits
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		// But not for apostrophes, periods in numbers, etc.
		if curr != '\'' && curr != '.' && curr != ',' {
			return true
		}
	}

	// Break after punctuation before letters (except apostrophe)
	if unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr) {
		return true
	}

	return false
}
