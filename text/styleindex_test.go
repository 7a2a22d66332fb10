package text

import (
	"slices"
	"testing"
)

func TestStyleIndexRuns(t *testing.T) {
	a, b := monoFace(10), monoFace(12)
	p := newTestParagraph(t, "aaabbbccc", FontStyle(a))
	if err := p.SetStyle(3, 6, FontStyle(b)); err != nil {
		t.Fatal(err)
	}
	if err := p.SetDecoration(5, 7, Decoration{Underline: true}); err != nil {
		t.Fatal(err)
	}

	x, err := BuildStyleIndex(p)
	if err != nil {
		t.Fatalf("BuildStyleIndex() error = %v", err)
	}

	tests := []struct {
		pos       int
		wantLimit int
		wantFace  Face
		wantUnder bool
	}{
		{0, 3, a, false},
		{2, 3, a, false},
		{3, 5, b, false},
		{5, 6, b, true},
		{6, 7, a, true},
		{7, 9, a, false},
		{8, 9, a, false},
		{9, 9, a, false},
	}

	for _, tt := range tests {
		if got := x.RunLimit(tt.pos); got != tt.wantLimit {
			t.Errorf("RunLimit(%d) = %d, want %d", tt.pos, got, tt.wantLimit)
		}
		if got := x.StyleAt(tt.pos).Face(); got != tt.wantFace {
			t.Errorf("StyleAt(%d).Face() = %p, want %p", tt.pos, got, tt.wantFace)
		}
		if got := x.DecorationAt(tt.pos).Underline; got != tt.wantUnder {
			t.Errorf("DecorationAt(%d).Underline = %v, want %v", tt.pos, got, tt.wantUnder)
		}
	}

	if x.Len() != 9 {
		t.Errorf("Len() = %d, want 9", x.Len())
	}
	if x.StyleAt(-4).Face() != a {
		t.Errorf("StyleAt(-4) should clamp to the first run")
	}
}

func TestStyleIndexEmpty(t *testing.T) {
	if _, err := BuildStyleIndex(nil); err == nil {
		t.Error("BuildStyleIndex(nil) should fail")
	}
}

// sameIndex reports whether two indexes describe the same runs.
func sameIndex(a, b *StyleIndex) bool {
	return slices.Equal(a.styleStarts, b.styleStarts) &&
		slices.Equal(a.styles, b.styles) &&
		slices.Equal(a.decoStarts, b.decoStarts) &&
		slices.Equal(a.decos, b.decos) &&
		a.generation == b.generation
}

func TestStyleIndexIncrementalEdits(t *testing.T) {
	a, b := monoFace(10), monoFace(12)
	base := newTestParagraph(t, "aabbcc", FontStyle(a))
	if err := base.SetStyle(2, 4, FontStyle(b)); err != nil {
		t.Fatal(err)
	}
	if err := base.SetDecoration(4, 5, Decoration{Strikethrough: true}); err != nil {
		t.Fatal(err)
	}

	for pos := 0; pos <= base.Len(); pos++ {
		t.Run("insert", func(t *testing.T) {
			x := buildStyleIndex(base, base.runes)
			q, err := base.InsertRune(pos, 'z')
			if err != nil {
				t.Fatal(err)
			}
			x.insertChar(q, q.runes, pos)
			want := buildStyleIndex(q, q.runes)
			if !sameIndex(x, want) {
				t.Errorf("insertChar(%d) starts = %v, want %v", pos, x.styleStarts, want.styleStarts)
			}
		})
	}

	for pos := 0; pos < base.Len(); pos++ {
		t.Run("delete", func(t *testing.T) {
			x := buildStyleIndex(base, base.runes)
			q, err := base.DeleteRune(pos)
			if err != nil {
				t.Fatal(err)
			}
			x.deleteChar(q, q.runes, pos)
			want := buildStyleIndex(q, q.runes)
			if !sameIndex(x, want) {
				t.Errorf("deleteChar(%d) starts = %v/%v, want %v/%v",
					pos, x.styleStarts, x.decoStarts, want.styleStarts, want.decoStarts)
			}
		})
	}
}
