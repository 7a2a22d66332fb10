package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,               // Default cache limit
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithCacheLimit sets the maximum number of cached glyph advances.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
// This allows using alternative font parsing libraries or
// a pure Go implementation in the future.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction   Direction
	language    string
	italicSlope float64
	slopeSet    bool
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the text direction for the face.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ja", "ar").
// The HarfBuzz shaper uses it to select language-specific features.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithItalicSlope overrides the italic slope read from the font. Use it
// for synthetic obliques; positive slopes lean to the right.
func WithItalicSlope(slope float64) FaceOption {
	return func(c *faceConfig) {
		c.italicSlope = slope
		c.slopeSet = true
	}
}

// CursorOption configures a BreakCursor or a Measurer.
type CursorOption func(*cursorConfig)

// cursorConfig holds the collaborators of a Measurer.
type cursorConfig struct {
	shaper Shaper
	bidi   BidiEngine
	breaks BreakFactory
	layout []LayoutOption
}

// defaultCursorConfig returns the default cursor configuration.
func defaultCursorConfig() cursorConfig {
	return cursorConfig{
		bidi:   XTextBidi{},
		breaks: NewLineBreaks,
	}
}

// WithShaper sets the shaper used for line components. The default is
// the global shaper at the time of each call.
func WithShaper(s Shaper) CursorOption {
	return func(c *cursorConfig) {
		c.shaper = s
	}
}

// WithBidiEngine sets the engine that resolves embedding levels. Nil
// restores XTextBidi.
func WithBidiEngine(b BidiEngine) CursorOption {
	return func(c *cursorConfig) {
		if b == nil {
			b = XTextBidi{}
		}
		c.bidi = b
	}
}

// WithBreakFactory sets the source of line break opportunities. Nil
// restores NewLineBreaks.
func WithBreakFactory(f BreakFactory) CursorOption {
	return func(c *cursorConfig) {
		if f == nil {
			f = NewLineBreaks
		}
		c.breaks = f
	}
}

// WithLayoutOptions sets options applied to every layout the cursor
// produces, after the paragraph's justification ratio.
func WithLayoutOptions(opts ...LayoutOption) CursorOption {
	return func(c *cursorConfig) {
		c.layout = append(c.layout, opts...)
	}
}
