package text

// StyleKind tells which variant a StyleValue holds.
type StyleKind uint8

const (
	// StyleNone is the zero StyleValue; it cannot be laid out.
	StyleNone StyleKind = iota
	// StyleFont renders characters with a Face.
	StyleFont
	// StyleGraphic replaces each character with an inline Graphic.
	StyleGraphic
)

// String returns the string representation of the kind.
func (k StyleKind) String() string {
	switch k {
	case StyleNone:
		return "None"
	case StyleFont:
		return "Font"
	case StyleGraphic:
		return "Graphic"
	default:
		return unknownStr
	}
}

// StyleValue is the style of a run of characters: either a font face or an
// inline graphic. StyleValue is comparable; two values are equal when they
// name the same face or the same graphic.
type StyleValue struct {
	face    Face
	graphic *Graphic
}

// FontStyle returns a style that renders with face.
func FontStyle(face Face) StyleValue {
	return StyleValue{face: face}
}

// GraphicStyle returns a style that renders g in place of each character.
func GraphicStyle(g *Graphic) StyleValue {
	return StyleValue{graphic: g}
}

// Kind returns the variant held by s.
func (s StyleValue) Kind() StyleKind {
	switch {
	case s.face != nil:
		return StyleFont
	case s.graphic != nil:
		return StyleGraphic
	default:
		return StyleNone
	}
}

// Face returns the face of a font style, or nil.
func (s StyleValue) Face() Face { return s.face }

// Graphic returns the graphic of a graphic style, or nil.
func (s StyleValue) Graphic() *Graphic { return s.graphic }

// resolve returns the concrete style used for rune r. Fallback faces are
// resolved to the member face that has the glyph.
func (s StyleValue) resolve(r rune) StyleValue {
	if mf, ok := s.face.(*MultiFace); ok {
		return FontStyle(mf.faceForRune(r))
	}
	return s
}

// GraphicAlignment is the vertical alignment of an inline graphic.
type GraphicAlignment uint8

const (
	// GraphicRoman sits the graphic on the roman baseline.
	GraphicRoman GraphicAlignment = iota
	// GraphicCenter sits the graphic on the center baseline.
	GraphicCenter
	// GraphicHanging sits the graphic on the hanging baseline.
	GraphicHanging
	// GraphicTop pins the graphic's top to the line's ascent.
	GraphicTop
	// GraphicBottom pins the graphic's bottom to the line's descent.
	GraphicBottom
)

// Graphic is an inline object embedded in a line, such as an image or a
// widget. Each character styled with a graphic occupies Advance units.
type Graphic struct {
	Advance float64
	Ascent  float64
	Descent float64
	Align   GraphicAlignment
}

func (g *Graphic) coreMetrics() CoreMetrics {
	cm := CoreMetrics{
		Ascent:  g.Ascent,
		Descent: g.Descent,
	}
	switch g.Align {
	case GraphicCenter:
		cm.Baseline = BaselineCenter
	case GraphicHanging:
		cm.Baseline = BaselineHanging
	case GraphicTop:
		cm.Pin = PinTop
	case GraphicBottom:
		cm.Pin = PinBottom
	}
	return cm
}

// Decoration holds the non-font attributes of a run.
type Decoration struct {
	Underline     bool
	Strikethrough bool

	// Superscript raises text for positive levels and lowers it for
	// negative levels.
	Superscript int

	// Transform is applied to the glyphs of the run. Only its baseline
	// direction affects layout; the zero value is the identity.
	Transform Affine
}

// IsZero reports whether d carries no decoration.
func (d Decoration) IsZero() bool {
	return d == Decoration{}
}
