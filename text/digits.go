package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// DigitShaper rewrites European digits in place before layout.
type DigitShaper interface {
	// ShapeDigits rewrites the digits of text[start:end]. Characters
	// outside the range may be read as context.
	ShapeDigits(text []rune, start, end int)
}

// DigitSet is a set of decimal digits, identified by its zero.
type DigitSet rune

// Common digit sets.
const (
	EuropeanDigits            DigitSet = '0'
	ArabicIndicDigits         DigitSet = '٠'
	ExtendedArabicIndicDigits DigitSet = '۰'
	DevanagariDigits          DigitSet = '०'
	BengaliDigits             DigitSet = '০'
	GurmukhiDigits            DigitSet = '੦'
	TamilDigits               DigitSet = '௦'
	ThaiDigits                DigitSet = '๐'
	LaoDigits                 DigitSet = '໐'
	TibetanDigits             DigitSet = '༠'
	MyanmarDigits             DigitSet = '၀'
	KhmerDigits               DigitSet = '០'
)

// scriptDigits maps a script to the digits written with it.
var scriptDigits = map[language.Script]DigitSet{
	language.Arabic:     ArabicIndicDigits,
	language.Devanagari: DevanagariDigits,
	language.Bengali:    BengaliDigits,
	language.Gurmukhi:   GurmukhiDigits,
	language.Tamil:      TamilDigits,
	language.Thai:       ThaiDigits,
	language.Lao:        LaoDigits,
	language.Tibetan:    TibetanDigits,
	language.Myanmar:    MyanmarDigits,
	language.Khmer:      KhmerDigits,
}

func (d DigitSet) apply(r rune) rune {
	if r < '0' || r > '9' {
		return r
	}
	return rune(d) + (r - '0')
}

// Digits converts every European digit to one digit set.
type Digits struct {
	Set DigitSet
}

var _ DigitShaper = Digits{}

// ShapeDigits implements DigitShaper.
func (d Digits) ShapeDigits(text []rune, start, end int) {
	for i := start; i < end; i++ {
		text[i] = d.Set.apply(text[i])
	}
}

// ContextualDigits converts each European digit to the digits of the
// script of the nearest preceding strong character (bidi class L, R or AL).
// Digits with no strong context, or whose context script has no digits of
// its own, use Default.
type ContextualDigits struct {
	Default DigitSet
}

var _ DigitShaper = ContextualDigits{}

// ShapeDigits implements DigitShaper.
func (c ContextualDigits) ShapeDigits(text []rune, start, end int) {
	set := c.contextAt(text, start)
	for i := start; i < end; i++ {
		r := text[i]
		if isStrong(r) {
			set = c.setFor(language.LookupScript(r))
			continue
		}
		text[i] = set.apply(r)
	}
}

func (c ContextualDigits) contextAt(text []rune, pos int) DigitSet {
	for i := pos - 1; i >= 0; i-- {
		if isStrong(text[i]) {
			return c.setFor(language.LookupScript(text[i]))
		}
	}
	return c.defaultSet()
}

func (c ContextualDigits) setFor(s language.Script) DigitSet {
	if d, ok := scriptDigits[s]; ok {
		return d
	}
	return c.defaultSet()
}

func (c ContextualDigits) defaultSet() DigitSet {
	if c.Default == 0 {
		return EuropeanDigits
	}
	return c.Default
}

func isStrong(r rune) bool {
	switch bidiClass(r) {
	case bidi.L, bidi.R, bidi.AL:
		return true
	}
	return false
}
