package text

import (
	"fmt"
	"slices"

	"github.com/go-text/typesetting/language"
)

// Assembler builds lines from a style index: it splits a range into runs
// of one style, decoration, bidi level and script, shapes each run and
// places the results.
type Assembler struct {
	shaper Shaper
}

// NewAssembler returns an assembler that shapes with s, or with the global
// shaper when s is nil.
func NewAssembler(s Shaper) *Assembler {
	return &Assembler{shaper: s}
}

func (a *Assembler) shaperOrDefault() Shaper {
	if a == nil || a.shaper == nil {
		return GetShaper()
	}
	return a.shaper
}

// Assemble lays out characters [start, end) of idx as one line. levels
// holds the bidi level of each character in the range; nil means a single
// left-to-right run.
func (a *Assembler) Assemble(idx *StyleIndex, start, end int, levels []int) (*Line, error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: nil style index", ErrInvalidArgument)
	}
	if err := checkRange("Assemble", start, 0, idx.Len()-1); err != nil {
		return nil, err
	}
	if err := checkRange("Assemble", end, start+1, idx.Len()); err != nil {
		return nil, err
	}
	if levels != nil && len(levels) != end-start {
		return nil, fmt.Errorf("%w: %d levels for %d characters", ErrInvalidArgument, len(levels), end-start)
	}

	text := idx.text
	scripts := resolveScripts(text[start:end])
	comps, err := a.components(idx, start, end, start, levels, scripts)
	if err != nil {
		return nil, err
	}
	paraLevel := 0
	if levels != nil {
		paraLevel = paragraphLevel(text, idx.BaseDirection())
	}
	return newLine(slices.Clone(text[start:end]), start, comps, slices.Clone(levels), paraLevel)
}

// components splits [start, end) of idx into shaped components. levels and
// scripts are indexed from base; levels may be nil.
func (a *Assembler) components(idx *StyleIndex, start, end, base int, levels []int, scripts []language.Script) ([]*Component, error) {
	text := idx.text
	shaper := a.shaperOrDefault()
	var comps []*Component
	for pos := start; pos < end; {
		limit := min(idx.RunLimit(pos), end)
		level := 0
		if levels != nil {
			level = levels[pos-base]
			limit = min(limit, base+levelRunLimit(levels, pos-base))
		}
		limit = min(limit, base+scriptRunLimit(scripts, pos-base))

		style, deco := idx.StyleAt(pos), idx.DecorationAt(pos)
		switch style.Kind() {
		case StyleGraphic:
			comps = append(comps, newGraphicComponent(pos, limit, level, style, deco))
		case StyleFont:
			script := scripts[pos-base]
			glyphs := shaper.Shape(ShapeInput{
				Text:      text,
				Start:     pos,
				End:       limit,
				Face:      style.Face(),
				Direction: directionForLevel(level),
				Script:    script,
			})
			comps = append(comps, newFontComponent(text, pos, limit, level, style, deco, script, glyphs))
		default:
			return nil, fmt.Errorf("%w: no style at %d", ErrContract, pos)
		}
		pos = limit
	}
	return comps, nil
}

// levelRunLimit returns the end of the run of equal levels starting at
// start.
func levelRunLimit(levels []int, start int) int {
	i := start + 1
	for i < len(levels) && levels[i] == levels[start] {
		i++
	}
	return i
}
