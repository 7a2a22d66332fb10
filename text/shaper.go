package text

import (
	"slices"
	"sync"

	"github.com/go-text/typesetting/language"
)

// ShapeInput describes one run to shape: the characters text[Start:End],
// all in one face, one direction and one script. Characters outside the
// run are context for contextual forms and are not shaped.
type ShapeInput struct {
	Text       []rune
	Start, End int
	Face       Face
	Direction  Direction
	Script     language.Script
}

// Shaper converts a run of text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: nominal glyphs and advances from golang.org/x/image/font
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
//   - CachingShaper: memoizes any other Shaper
type Shaper interface {
	// Shape returns the glyphs of in.Text[in.Start:in.End] in visual
	// order: left to right, so reversed for right-to-left runs. Clusters
	// index in.Text.
	Shape(in ShapeInput) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape() and by assemblers
// created without an explicit shaper.
// Pass nil to reset to the default BuiltinShaper.
//
// Example usage with a custom shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(in ShapeInput) []ShapedGlyph {
	return GetShaper().Shape(in)
}

// layoutPen assigns X from the glyph advances, left to right.
func layoutPen(glyphs []ShapedGlyph) {
	x := 0.0
	for i := range glyphs {
		glyphs[i].X = x
		x += glyphs[i].XAdvance
	}
}

// BuiltinShaper maps every character to the face's nominal glyph.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require complex text shaping (ligatures, contextual forms, etc.).
// Right-to-left runs are reversed, so Hebrew lays out correctly; Arabic
// joining forms need GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

var _ Shaper = (*BuiltinShaper)(nil)

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(in ShapeInput) []ShapedGlyph {
	if in.Face == nil || in.Start >= in.End {
		return nil
	}
	glyphs := in.Face.AppendGlyphs(nil, string(in.Text[in.Start:in.End]))
	result := make([]ShapedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		result = append(result, ShapedGlyph{
			GID:      g.GID,
			Cluster:  in.Start + g.Cluster,
			XAdvance: g.Advance,
		})
	}
	if in.Direction == DirectionRTL {
		slices.Reverse(result)
	}
	layoutPen(result)
	return result
}
