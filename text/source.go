package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/textline/internal/cache"
)

// FontSource is a parsed font file. Faces at any size are cheap views onto
// one FontSource, so load each font once and share it.
//
// FontSource is safe for concurrent use and must not be copied.
type FontSource struct {
	// addr points at the FontSource itself; a copy by value keeps the
	// original pointer and is caught by copyCheck.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont
	name   string
	config sourceConfig

	// Scaled advances keyed by glyph and size, and per-rune coverage
	// (1 when the cmap maps the rune, 0 otherwise).
	advances *cache.Cache[advanceKey, float64]
	coverage *runeTable
}

// NewFontSource parses TTF or OTF data with the configured parser backend.
// The data is copied.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:     append([]byte(nil), data...),
		parsed:   parsed,
		name:     extractFontName(parsed),
		config:   config,
		advances: cache.New[advanceKey, float64](config.cacheLimit),
		coverage: newRuneTable(),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile reads and parses a font file.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font path comes from the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face returns a Face of the given size in points.
// Panics if s is nil, which usually means a load error was ignored.
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil; did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{source: s, size: size, config: config}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the backend font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases the font data and caches. Faces of a closed source must
// not be used.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	s.advances.Clear()
	s.coverage.clear()
	return nil
}

type advanceKey struct {
	gid  uint16
	size float64
}

// glyphAdvance returns the advance of gid at size.
func (s *FontSource) glyphAdvance(gid uint16, size float64) float64 {
	key := advanceKey{gid: gid, size: size}
	if adv, ok := s.advances.Get(key); ok {
		return adv
	}
	adv := s.Parsed().GlyphAdvance(gid, size)
	s.advances.Set(key, adv)
	return adv
}

// hasGlyph reports whether the cmap maps r to a glyph other than .notdef.
func (s *FontSource) hasGlyph(r rune) bool {
	return s.coverage.memo(r, func(r rune) uint8 {
		if s.Parsed().GlyphIndex(r) != 0 {
			return 1
		}
		return 0
	}) == 1
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName prefers the family name, then the full name.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if name := parsed.FullName(); name != "" {
		return name
	}
	return "Unknown Font"
}
