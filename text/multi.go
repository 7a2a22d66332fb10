package text

import "iter"

// maxFallbackFaces bounds a MultiFace so a face index fits the rune table.
const maxFallbackFaces = 254

// MultiFace is a fallback chain: every rune is drawn from the first member
// face that covers it, or from the first face when none does. The style
// index splits a MultiFace run wherever the resolved face changes, so each
// line component is shaped by exactly one concrete face.
//
// Metrics and Size come from the first face. MultiFace is safe for
// concurrent use.
type MultiFace struct {
	faces     []Face
	direction Direction
	resolved  *runeTable
}

// NewMultiFace creates a fallback chain. All faces must share a direction.
func NewMultiFace(faces ...Face) (*MultiFace, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyFaces
	}
	if len(faces) > maxFallbackFaces {
		return nil, &RangeError{Op: "NewMultiFace", Index: len(faces), Min: 1, Max: maxFallbackFaces}
	}

	direction := faces[0].Direction()
	for i, face := range faces[1:] {
		if face.Direction() != direction {
			return nil, &DirectionMismatchError{Index: i + 1, Got: face.Direction(), Expected: direction}
		}
	}

	return &MultiFace{
		faces:     append([]Face(nil), faces...),
		direction: direction,
		resolved:  newRuneTable(),
	}, nil
}

// Faces returns the member faces in fallback order.
func (m *MultiFace) Faces() []Face {
	return append([]Face(nil), m.faces...)
}

// Metrics implements Face.Metrics.
func (m *MultiFace) Metrics() Metrics {
	return m.faces[0].Metrics()
}

// Advance implements Face.Advance.
func (m *MultiFace) Advance(text string) float64 {
	total := 0.0
	for g := range m.Glyphs(text) {
		total += g.Advance
	}
	return total
}

// HasGlyph implements Face.HasGlyph. It reports whether any member covers r.
func (m *MultiFace) HasGlyph(r rune) bool {
	return m.faces[m.faceIndex(r)].HasGlyph(r)
}

// Glyphs implements Face.Glyphs. Each glyph comes from the face resolved
// for its rune; positions and offsets are relative to text.
func (m *MultiFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		x := 0.0
		cluster := 0
		for byteIndex, r := range text {
			for g := range m.faceForRune(r).Glyphs(string(r)) {
				g.X = x
				g.Index = byteIndex
				g.Cluster = cluster
				if !yield(g) {
					return
				}
				x += g.Advance
			}
			cluster++
		}
	}
}

// AppendGlyphs implements Face.AppendGlyphs.
func (m *MultiFace) AppendGlyphs(dst []Glyph, text string) []Glyph {
	for g := range m.Glyphs(text) {
		dst = append(dst, g)
	}
	return dst
}

// Direction implements Face.Direction.
func (m *MultiFace) Direction() Direction {
	return m.direction
}

// Source implements Face.Source. A fallback chain has no single source.
func (m *MultiFace) Source() *FontSource {
	return nil
}

// Size implements Face.Size.
func (m *MultiFace) Size() float64 {
	return m.faces[0].Size()
}

func (m *MultiFace) private() {}

// faceForRune returns the member face used for r.
func (m *MultiFace) faceForRune(r rune) Face {
	return m.faces[m.faceIndex(r)]
}

func (m *MultiFace) faceIndex(r rune) int {
	return int(m.resolved.memo(r, func(r rune) uint8 {
		for i, face := range m.faces {
			if face.HasGlyph(r) {
				return uint8(i) //nolint:gosec // bounded by maxFallbackFaces
			}
		}
		return 0
	}))
}
