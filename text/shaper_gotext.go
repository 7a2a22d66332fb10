package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/internal/cache"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Contextual alternates and Arabic joining forms
//   - Complex scripts (Devanagari, Thai, etc.)
//
// Faces without a FontSource (MultiFace, custom test faces) and fonts
// go-text cannot parse fall back to BuiltinShaper.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// fonts maps FontSource pointers to parsed go-text Font objects.
	fonts *cache.Cache[*FontSource, *font.Font]

	fallback BuiltinShaper
}

var _ Shaper = (*GoTextShaper)(nil)

// goTextFontLimit bounds the number of parsed fonts kept alive.
const goTextFontLimit = 64

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: cache.New[*FontSource, *font.Font](goTextFontLimit),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(in ShapeInput) []ShapedGlyph {
	if in.Face == nil || in.Start >= in.End {
		return nil
	}

	source := in.Face.Source()
	if source == nil {
		return s.fallback.Shape(in)
	}

	goTextFont, err := s.fonts.GetOrCreate(source, func() (*font.Font, error) {
		face, err := font.ParseTTF(bytes.NewReader(source.data))
		if err != nil {
			return nil, err
		}
		return face.Font, nil
	})
	if err != nil {
		textline.Logger().Warn("text: go-text cannot parse font, using builtin shaper",
			"font", source.Name(), "err", err)
		return s.fallback.Shape(in)
	}

	lang := language.NewLanguage("en")
	if lf, ok := in.Face.(*sourceFace); ok {
		lang = language.NewLanguage(lf.language())
	}

	dir := mapDirection(in.Direction)
	input := shaping.Input{
		Text:      in.Text,
		RunStart:  in.Start,
		RunEnd:    in.End,
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      toFixed(in.Face.Size()),
		Script:    in.Script,
		Language:  lang,
	}
	if input.Script == 0 || input.Script == language.Common || input.Script == language.Unknown {
		input.Script = detectScript(in.Text[in.Start:in.End])
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.fonts.Clear()
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// This is useful when a FontSource is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.fonts.Delete(source)
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

// detectScript returns the script of the first character with a concrete
// script, or Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s.Strong() {
			return s
		}
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs, already in visual order,
// to ShapedGlyphs. go-text offsets are y-up; ShapedGlyph.Y is y-down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	x := 0.0
	for i, g := range glyphs {
		adv := fixedToFloat64(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // GlyphID is uint16 by design
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat64(g.XOffset),
			Y:        -fixedToFloat64(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
