package text

import (
	"errors"
	"testing"
)

// newFallbackPair returns a MultiFace over a face covering a, b and space
// and a face covering c and d.
func newFallbackPair(t *testing.T) (mf *MultiFace, first, second Face) {
	t.Helper()

	first = newMockFace(12, DirectionLTR, map[rune]float64{'a': 6, 'b': 7, ' ': 3})
	second = newMockFace(14, DirectionLTR, map[rune]float64{'c': 8, 'd': 9})
	mf, err := NewMultiFace(first, second)
	if err != nil {
		t.Fatalf("NewMultiFace failed: %v", err)
	}
	return mf, first, second
}

func TestNewMultiFace(t *testing.T) {
	face := newMockFace(12, DirectionLTR, map[rune]float64{'a': 6})

	t.Run("empty", func(t *testing.T) {
		if _, err := NewMultiFace(); !errors.Is(err, ErrEmptyFaces) {
			t.Errorf("NewMultiFace() error = %v, want %v", err, ErrEmptyFaces)
		}
	})

	t.Run("mismatched directions", func(t *testing.T) {
		rtl := newMockFace(12, DirectionRTL, map[rune]float64{'x': 10})
		_, err := NewMultiFace(face, rtl)
		var dm *DirectionMismatchError
		if !errors.As(err, &dm) {
			t.Fatalf("NewMultiFace() error = %v, want *DirectionMismatchError", err)
		}
		if dm.Index != 1 || dm.Got != DirectionRTL || dm.Expected != DirectionLTR {
			t.Errorf("DirectionMismatchError = %+v", dm)
		}
	})

	t.Run("too many faces", func(t *testing.T) {
		faces := make([]Face, maxFallbackFaces+1)
		for i := range faces {
			faces[i] = face
		}
		if _, err := NewMultiFace(faces...); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewMultiFace(%d faces) error = %v, want %v", len(faces), err, ErrInvalidArgument)
		}
	})

	t.Run("faces are copied", func(t *testing.T) {
		faces := []Face{face}
		mf, err := NewMultiFace(faces...)
		if err != nil {
			t.Fatalf("NewMultiFace failed: %v", err)
		}
		faces[0] = nil
		if got := mf.Faces(); len(got) != 1 || got[0] != face {
			t.Errorf("Faces() = %v, want [%p]", got, face)
		}
	})
}

func TestMultiFaceDelegation(t *testing.T) {
	mf, first, _ := newFallbackPair(t)

	if got, want := mf.Metrics(), first.Metrics(); got != want {
		t.Errorf("Metrics() = %+v, want %+v", got, want)
	}
	if got := mf.Size(); got != 12 {
		t.Errorf("Size() = %v, want 12", got)
	}
	if got := mf.Direction(); got != DirectionLTR {
		t.Errorf("Direction() = %v, want %v", got, DirectionLTR)
	}
	if got := mf.Source(); got != nil {
		t.Errorf("Source() = %v, want nil", got)
	}
}

func TestMultiFaceResolution(t *testing.T) {
	mf, first, second := newFallbackPair(t)

	tests := []struct {
		r       rune
		face    Face
		covered bool
	}{
		{'a', first, true},
		{'b', first, true},
		{'c', second, true},
		{'d', second, true},
		{'x', first, false},
	}
	for _, tt := range tests {
		// Twice: the second lookup is served from the rune table.
		for range 2 {
			if got := mf.faceForRune(tt.r); got != tt.face {
				t.Errorf("faceForRune(%q) = %p, want %p", tt.r, got, tt.face)
			}
			if got := mf.HasGlyph(tt.r); got != tt.covered {
				t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.covered)
			}
		}
	}
	if got := mf.resolved.len(); got != len(tests) {
		t.Errorf("resolved %d runes, want %d", got, len(tests))
	}
}

func TestMultiFaceAdvance(t *testing.T) {
	mf, _, _ := newFallbackPair(t)

	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"a", 6},
		{"ab", 13},
		{"cd", 17},
		{"abcd", 30},
		{"a c", 17},
	}
	for _, tt := range tests {
		if got := mf.Advance(tt.text); got != tt.want {
			t.Errorf("Advance(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMultiFaceGlyphs(t *testing.T) {
	mf, _, _ := newFallbackPair(t)

	glyphs := mf.AppendGlyphs(nil, "a\u00E9c")
	want := []struct {
		r              rune
		x, advance     float64
		index, cluster int
	}{
		{'a', 0, 6, 0, 0},
		{'\u00E9', 6, 12, 1, 1}, // uncovered, first face default advance
		{'c', 18, 8, 3, 2},
	}
	if len(glyphs) != len(want) {
		t.Fatalf("AppendGlyphs() returned %d glyphs, want %d", len(glyphs), len(want))
	}
	for i, w := range want {
		g := glyphs[i]
		if g.Rune != w.r || g.X != w.x || g.Advance != w.advance || g.Index != w.index || g.Cluster != w.cluster {
			t.Errorf("glyph %d = %+v, want %+v", i, g, w)
		}
	}

	n := 0
	for range mf.Glyphs("abcd") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Glyphs() early exit visited %d glyphs, want 2", n)
	}
}

func TestMultiFaceStyleRuns(t *testing.T) {
	face1 := newMockFace(10, DirectionLTR, map[rune]float64{'a': 6, ' ': 3})
	face2 := newMockFace(10, DirectionLTR, map[rune]float64{'b': 7})

	mf, err := NewMultiFace(face1, face2)
	if err != nil {
		t.Fatalf("NewMultiFace failed: %v", err)
	}
	p := newTestParagraph(t, "aa bb", FontStyle(mf))
	idx, err := BuildStyleIndex(p)
	if err != nil {
		t.Fatalf("BuildStyleIndex() error = %v", err)
	}

	tests := []struct {
		pos   int
		face  Face
		limit int
	}{
		{0, face1, 3},
		{2, face1, 3},
		{3, face2, 5},
		{4, face2, 5},
	}
	for _, tt := range tests {
		if got := idx.StyleAt(tt.pos).Face(); got != tt.face {
			t.Errorf("StyleAt(%d).Face() = %p, want %p", tt.pos, got, tt.face)
		}
		if got := idx.RunLimit(tt.pos); got != tt.limit {
			t.Errorf("RunLimit(%d) = %d, want %d", tt.pos, got, tt.limit)
		}
	}

	line := newTestLine(t, p)
	if got := line.Metrics().Advance; got != 6+6+3+7+7 {
		t.Errorf("Advance = %v, want %v", got, 29)
	}
}
