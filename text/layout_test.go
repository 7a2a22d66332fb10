package text

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestLayoutMetrics(t *testing.T) {
	l, err := NewTextLayout("hello", FontStyle(monoFace(10)))
	if err != nil {
		t.Fatalf("NewTextLayout() error = %v", err)
	}

	if l.CharacterCount() != 5 {
		t.Errorf("CharacterCount() = %d, want 5", l.CharacterCount())
	}
	if !approxEqual(l.Advance(), 50) || !approxEqual(l.Ascent(), 8) ||
		!approxEqual(l.Descent(), 2) || !approxEqual(l.Leading(), 1) {
		t.Errorf("metrics = %s, want advance 50, ascent 8, descent 2, leading 1", l)
	}
	if l.Baseline() != BaselineRoman {
		t.Errorf("Baseline() = %v, want Roman", l.Baseline())
	}
	if l.JustificationRatio() != 1 || l.IsJustified() {
		t.Errorf("JustificationRatio() = %v, IsJustified() = %v, want 1, false", l.JustificationRatio(), l.IsJustified())
	}
	want := Rect{MinX: 0, MinY: -8, MaxX: 50, MaxY: 2}
	if got := l.NaturalBounds(); !approxRect(got, want) {
		t.Errorf("NaturalBounds() = %+v, want %+v", got, want)
	}
	if got := l.Bounds(); !approxRect(got, want) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if !strings.HasPrefix(l.String(), "Layout{chars: 5") {
		t.Errorf("String() = %q", l.String())
	}

	if _, err := NewLayout(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewLayout(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func approxRect(a, b Rect) bool {
	return approxEqual(a.MinX, b.MinX) && approxEqual(a.MinY, b.MinY) &&
		approxEqual(a.MaxX, b.MaxX) && approxEqual(a.MaxY, b.MaxY)
}

func TestLayoutBoundsWithUnderline(t *testing.T) {
	p := newTestParagraph(t, "ab", FontStyle(monoFace(10)))
	if err := p.SetDecoration(0, 2, Decoration{Underline: true}); err != nil {
		t.Fatal(err)
	}
	face := monoFace(10)
	face.metrics.UnderlineOffset = 3
	face.metrics.UnderlineThickness = 1
	if err := p.SetStyle(0, 2, FontStyle(face)); err != nil {
		t.Fatal(err)
	}
	l := newTestLayout(t, p)

	if got := l.NaturalBounds().MaxY; !approxEqual(got, 2) {
		t.Errorf("NaturalBounds().MaxY = %v, want 2", got)
	}
	if got := l.Bounds().MaxY; !approxEqual(got, 4) {
		t.Errorf("Bounds().MaxY = %v, want 4", got)
	}
}

func TestLayoutCharacterLevel(t *testing.T) {
	p := newTestParagraph(t, alef+bet+"ab", FontStyle(monoFace(10)))
	l := newTestLayout(t, p)

	tests := []struct {
		index int
		want  int
	}{
		{-1, 1},
		{0, 1},
		{2, 2},
		{4, 1},
	}
	for _, tt := range tests {
		got, err := l.CharacterLevel(tt.index)
		if err != nil || got != tt.want {
			t.Errorf("CharacterLevel(%d) = %d, %v, want %d", tt.index, got, err, tt.want)
		}
	}
	if _, err := l.CharacterLevel(5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CharacterLevel(5) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLayoutVisibleAdvance(t *testing.T) {
	tests := []struct {
		name string
		text string
		base BaseDirection
		want float64
	}{
		{"no whitespace", "abc", BaseLTR, 30},
		{"trailing ltr", "ab  ", BaseLTR, 20},
		{"trailing rtl", alef + bet + "  ", BaseRTL, 20},
		{"only whitespace", "   ", BaseLTR, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParagraph(t, tt.text, FontStyle(monoFace(10)), WithBaseDirection(tt.base))
			l := newTestLayout(t, p)
			if got := l.VisibleAdvance(); !approxEqual(got, tt.want) {
				t.Errorf("VisibleAdvance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHitTestChar(t *testing.T) {
	ltr := newTestLayout(t, newTestParagraph(t, "hello", FontStyle(monoFace(10))))
	rtl := newTestLayout(t, newTestParagraph(t, alef+bet+gimel, FontStyle(monoFace(10))))

	tests := []struct {
		name   string
		layout *Layout
		x, y   float64
		want   CaretSite
	}{
		{"ltr left half", ltr, 12, 0, LeadingSite(1)},
		{"ltr right half", ltr, 18, -3, TrailingSite(1)},
		{"ltr before start", ltr, -5, 0, LeadingSite(0)},
		{"ltr past end", ltr, 60, 0, TrailingSite(4)},
		{"ltr at right edge", ltr, 50, 0, TrailingSite(4)},
		{"ltr far below", ltr, 31, 40, LeadingSite(3)},
		{"rtl left half", rtl, 22, -3, TrailingSite(0)},
		{"rtl right half", rtl, 28, -3, LeadingSite(0)},
		{"rtl before start", rtl, -1, 0, TrailingSite(2)},
		{"rtl past end", rtl, 31, 0, LeadingSite(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.HitTestChar(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTestChar(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestCharInBounds(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "hello", FontStyle(monoFace(10))))
	bounds := Rect{MinX: -20, MinY: -8, MaxX: 100, MaxY: 2}

	if got := l.HitTestCharInBounds(-5, 0, bounds); got != LeadingSite(0) {
		t.Errorf("HitTestCharInBounds(-5, 0) = %v, want Leading(0)", got)
	}
	if got := l.HitTestCharInBounds(70, 0, bounds); got != TrailingSite(4) {
		t.Errorf("HitTestCharInBounds(70, 0) = %v, want Trailing(4)", got)
	}
}

func TestHitTestSlanted(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "ab", FontStyle(monoFace(10).slanted(0.25))))

	// Character 0's centre line leans right: at the top of the line it
	// passes x = 5 + 0.25*3 + 0.25*5 = 7.
	if got := l.HitTestChar(6.5, -8); got != LeadingSite(0) {
		t.Errorf("HitTestChar(6.5, -8) = %v, want Leading(0)", got)
	}
	if got := l.HitTestChar(6.5, 2); got != TrailingSite(0) {
		t.Errorf("HitTestChar(6.5, 2) = %v, want Trailing(0)", got)
	}
}

func TestHitTestCaretRoundTrip(t *testing.T) {
	mixed := "ab" + alef + bet + gimel + "cd"
	tests := []struct {
		name string
		text string
		face *mockFace
		base BaseDirection
	}{
		{"mixed ltr base", mixed, monoFace(10), BaseLTR},
		{"mixed rtl base", mixed, monoFace(10), BaseRTL},
		{"slanted ltr", "abcd", monoFace(10).slanted(0.3), BaseLTR},
		{"slanted mixed rtl base", mixed, monoFace(10).slanted(0.3), BaseRTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(t, newTestParagraph(t, tt.text, FontStyle(tt.face), WithBaseDirection(tt.base)))
			ln := l.Line()
			for i := range ln.CharacterCount() {
				left, adv := ln.CharX(i), ln.CharAdvance(i)
				baseY, slope := ln.CharY(i), ln.CharSlope(i)
				y := baseY - ln.CharAscent(i)/2
				for _, f := range []float64{0.2, 0.8} {
					x := left + f*adv - slope*(y-baseY)
					site := l.HitTestChar(x, y)

					leftHalf := f < 0.5
					// The leading half of a character reports its own offset.
					wantOffset := i
					if leftHalf != ln.IsCharLTR(i) {
						wantOffset = i + 1
					}
					if got := site.InsertionOffset(); got != wantOffset {
						t.Errorf("char %d at %.1f: HitTestChar(%v, %v) = %v, offset %d, want %d",
							i, f, x, y, site, got, wantOffset)
						continue
					}

					cx, cslope, err := l.CaretInfo(site)
					if err != nil {
						t.Fatalf("CaretInfo(%v) error = %v", site, err)
					}
					caretX := cx - cslope*y
					edge := left
					if !leftHalf {
						edge += adv
					}
					wantX := edge - slope*(y-baseY)
					if !approxEqual(caretX, wantX) {
						t.Errorf("char %d at %.1f: caret %v crosses y=%v at %v, want %v", i, f, site, y, caretX, wantX)
					}
					if (leftHalf && caretX > x) || (!leftHalf && caretX < x) {
						t.Errorf("char %d at %.1f: caret %v at %v is on the wrong side of %v", i, f, site, caretX, x)
					}
				}
			}
		})
	}
}

func TestHitTestSkipsClusterInterior(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "e\u0301x", FontStyle(monoFace(10))))

	// The mark cannot hold a caret, so the trailing half of the base
	// character reports the edge after the whole cluster.
	if got := l.HitTestChar(8, -3); got != TrailingSite(1) {
		t.Errorf("HitTestChar(8, -3) = %v, want Trailing(1)", got)
	}
}

func TestCaretSite(t *testing.T) {
	tests := []struct {
		site       CaretSite
		wantOffset int
		wantOther  CaretSite
		wantString string
	}{
		{LeadingSite(3), 3, TrailingSite(2), "Leading(3)"},
		{TrailingSite(3), 4, LeadingSite(4), "Trailing(3)"},
		{AfterOffset(0), 0, TrailingSite(-1), "Leading(0)"},
		{BeforeOffset(5), 5, LeadingSite(5), "Trailing(4)"},
	}

	for _, tt := range tests {
		if got := tt.site.InsertionOffset(); got != tt.wantOffset {
			t.Errorf("%v.InsertionOffset() = %d, want %d", tt.site, got, tt.wantOffset)
		}
		if got := tt.site.OtherSite(); got != tt.wantOther {
			t.Errorf("%v.OtherSite() = %v, want %v", tt.site, got, tt.wantOther)
		}
		if got := tt.site.String(); got != tt.wantString {
			t.Errorf("String() = %q, want %q", got, tt.wantString)
		}
	}
	if Edge(7).String() != "Unknown" {
		t.Errorf("Edge(7).String() = %q, want Unknown", Edge(7).String())
	}
}

func TestCaretInfo(t *testing.T) {
	upright := newTestLayout(t, newTestParagraph(t, "hello", FontStyle(monoFace(10))))
	italic := newTestLayout(t, newTestParagraph(t, "ab", FontStyle(monoFace(10).slanted(0.25))))

	tests := []struct {
		name      string
		layout    *Layout
		site      CaretSite
		wantX     float64
		wantSlope float64
	}{
		{"leading", upright, LeadingSite(2), 20, 0},
		{"trailing", upright, TrailingSite(2), 30, 0},
		{"line start", upright, TrailingSite(-1), 0, 0},
		{"line end", upright, LeadingSite(5), 50, 0},
		{"slanted", italic, LeadingSite(1), 10, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, slope, err := tt.layout.CaretInfo(tt.site)
			if err != nil {
				t.Fatalf("CaretInfo(%v) error = %v", tt.site, err)
			}
			if !approxEqual(x, tt.wantX) || !approxEqual(slope, tt.wantSlope) {
				t.Errorf("CaretInfo(%v) = (%v, %v), want (%v, %v)", tt.site, x, slope, tt.wantX, tt.wantSlope)
			}
		})
	}

	if _, _, err := upright.CaretInfo(LeadingSite(6)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CaretInfo(Leading(6)) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCaretShape(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "ab", FontStyle(monoFace(10).slanted(0.25))))

	seg, err := l.CaretShape(LeadingSite(1), Rect{})
	if err != nil {
		t.Fatalf("CaretShape() error = %v", err)
	}
	want := Segment{A: Point{X: 12, Y: -8}, B: Point{X: 9.5, Y: 2}}
	if !approxPoint(seg.A, want.A) || !approxPoint(seg.B, want.B) {
		t.Errorf("CaretShape(Leading(1)) = %v, want %v", seg, want)
	}

	seg, err = l.CaretShape(LeadingSite(1), Rect{MinX: 0, MinY: -4, MaxX: 22, MaxY: 0})
	if err != nil {
		t.Fatalf("CaretShape() error = %v", err)
	}
	if !approxEqual(seg.A.Y, -4) || !approxEqual(seg.B.Y, 0) {
		t.Errorf("CaretShape() in custom bounds spans y %v..%v, want -4..0", seg.A.Y, seg.B.Y)
	}
}

// mixedLayout is "ab" followed by two Hebrew letters: logical order
// a b alef bet, drawn as a b bet alef.
func mixedLayout(t *testing.T, opts ...LayoutOption) *Layout {
	t.Helper()
	return newTestLayout(t, newTestParagraph(t, "ab"+alef+bet, FontStyle(monoFace(10))), opts...)
}

func TestCaretShapesAtDirectionBoundary(t *testing.T) {
	l := mixedLayout(t)

	strong, weak, hasWeak, err := l.CaretShapes(2, Rect{}, nil)
	if err != nil {
		t.Fatalf("CaretShapes(2) error = %v", err)
	}
	if !hasWeak {
		t.Fatal("CaretShapes(2) should return a weak caret at a direction boundary")
	}
	if !approxEqual(strong.A.X, 20) || !approxEqual(weak.A.X, 40) {
		t.Errorf("CaretShapes(2) strong x = %v, weak x = %v, want 20, 40", strong.A.X, weak.A.X)
	}

	_, _, hasWeak, err = l.CaretShapes(1, Rect{}, nil)
	if err != nil || hasWeak {
		t.Errorf("CaretShapes(1) hasWeak = %v, err = %v, want false, nil", hasWeak, err)
	}

	preferRTL := func(a, b CaretSite, l *Layout) CaretSite {
		if l.level(a.Index)%2 == 1 {
			return a
		}
		return b
	}
	strong, _, _, err = l.CaretShapes(2, Rect{}, preferRTL)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(strong.A.X, 40) {
		t.Errorf("CaretShapes(2, preferRTL) strong x = %v, want 40", strong.A.X)
	}

	if _, _, _, err := l.CaretShapes(5, Rect{}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CaretShapes(5) error = %v, want ErrInvalidArgument", err)
	}
}

func TestStrongCaret(t *testing.T) {
	l := mixedLayout(t)

	tests := []struct {
		offset int
		want   CaretSite
	}{
		{0, LeadingSite(0)},
		{1, LeadingSite(1)},
		{2, TrailingSite(1)},
		{4, LeadingSite(4)},
	}
	for _, tt := range tests {
		got, err := l.StrongCaret(tt.offset)
		if err != nil || got != tt.want {
			t.Errorf("StrongCaret(%d) = %v, %v, want %v", tt.offset, got, err, tt.want)
		}
	}

	custom := mixedLayout(t, WithCaretPolicy(func(a, b CaretSite, _ *Layout) CaretSite { return a }))
	if got, _ := custom.StrongCaret(2); got != LeadingSite(2) {
		t.Errorf("StrongCaret(2) with custom policy = %v, want Leading(2)", got)
	}
}

func TestNextHits(t *testing.T) {
	l := mixedLayout(t)

	// Walking right visits every caret position once.
	var right []CaretSite
	s := LeadingSite(0)
	for {
		next, ok, err := l.NextRightHit(s)
		if err != nil {
			t.Fatalf("NextRightHit(%v) error = %v", s, err)
		}
		if !ok {
			break
		}
		right = append(right, next)
		s = next
	}
	wantRight := []CaretSite{LeadingSite(1), TrailingSite(3), TrailingSite(2), LeadingSite(4)}
	if !slices.Equal(right, wantRight) {
		t.Errorf("NextRightHit walk = %v, want %v", right, wantRight)
	}

	next, ok, err := l.NextLeftHit(LeadingSite(4))
	if err != nil || !ok || next != TrailingSite(2) {
		t.Errorf("NextLeftHit(Leading(4)) = %v, %v, %v, want Trailing(2), true, nil", next, ok, err)
	}
	if _, ok, _ := l.NextLeftHit(LeadingSite(0)); ok {
		t.Error("NextLeftHit at the left end should report false")
	}
}

func TestNextHitsSkipMarks(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "e\u0301x", FontStyle(monoFace(10))))

	next, ok, err := l.NextRightHit(LeadingSite(0))
	if err != nil || !ok || next != LeadingSite(2) {
		t.Errorf("NextRightHit(Leading(0)) = %v, %v, %v, want Leading(2)", next, ok, err)
	}
	next, ok, err = l.NextLeftHit(LeadingSite(2))
	if err != nil || !ok || next != TrailingSite(-1) {
		t.Errorf("NextLeftHit(Leading(2)) = %v, %v, %v, want Trailing(-1)", next, ok, err)
	}
}

func TestVisualOtherHit(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "hello", FontStyle(monoFace(10))))

	tests := []struct {
		site CaretSite
		want CaretSite
	}{
		{TrailingSite(1), LeadingSite(2)},
		{LeadingSite(2), TrailingSite(1)},
		{LeadingSite(0), TrailingSite(-1)},
		{LeadingSite(5), TrailingSite(4)},
		{TrailingSite(-1), LeadingSite(0)},
	}
	for _, tt := range tests {
		got, err := l.VisualOtherHit(tt.site)
		if err != nil || got != tt.want {
			t.Errorf("VisualOtherHit(%v) = %v, %v, want %v", tt.site, got, err, tt.want)
		}
	}
}

func TestVisualHighlightShape(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "hello", FontStyle(monoFace(10))))

	r, err := l.VisualHighlightShape(LeadingSite(1), LeadingSite(3), Rect{})
	if err != nil {
		t.Fatalf("VisualHighlightShape() error = %v", err)
	}
	if len(r) != 1 {
		t.Fatalf("len(region) = %d, want 1", len(r))
	}
	want := Rect{MinX: 10, MinY: -8, MaxX: 30, MaxY: 2}
	if got := r.Bounds(); !approxRect(got, want) {
		t.Errorf("region bounds = %+v, want %+v", got, want)
	}

	wide := Rect{MinX: -10, MinY: -8, MaxX: 60, MaxY: 2}
	r, err = l.VisualHighlightShape(LeadingSite(2), LeadingSite(0), wide)
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 2 {
		t.Fatalf("len(region) = %d, want 2 with the left edge", len(r))
	}
	if got := r.Bounds(); !approxEqual(got.MinX, -10) || !approxEqual(got.MaxX, 20) {
		t.Errorf("region spans x %v..%v, want -10..20", got.MinX, got.MaxX)
	}

	if _, err := l.VisualHighlightShape(LeadingSite(9), LeadingSite(0), Rect{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("VisualHighlightShape(9) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLogicalHighlightShape(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "ab"+alef+bet+"c", FontStyle(monoFace(10))))

	r, err := l.LogicalHighlightShape(3, 1, Rect{})
	if err != nil {
		t.Fatalf("LogicalHighlightShape() error = %v", err)
	}
	if len(r) != 2 {
		t.Fatalf("len(region) = %d, want 2 disjoint parts", len(r))
	}
	spans := [][2]float64{}
	for _, p := range r {
		b := p.Bounds()
		spans = append(spans, [2]float64{b.MinX, b.MaxX})
	}
	slices.SortFunc(spans, func(a, b [2]float64) int { return int(a[0] - b[0]) })
	if !approxEqual(spans[0][0], 10) || !approxEqual(spans[0][1], 20) ||
		!approxEqual(spans[1][0], 30) || !approxEqual(spans[1][1], 40) {
		t.Errorf("highlight spans = %v, want [[10 20] [30 40]]", spans)
	}

	r, err = l.LogicalHighlightShape(2, 2, Rect{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 1 || r.Bounds().Width() != 0 {
		t.Errorf("empty selection = %v, want one zero-width polygon", r)
	}
}

func TestLogicalRangesForVisualSelection(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "ab"+alef+bet+"c", FontStyle(monoFace(10))))

	tests := []struct {
		name          string
		first, second CaretSite
		want          []int
	}{
		{"across boundary", LeadingSite(1), TrailingSite(2), []int{1, 2, 3, 4}},
		{"reversed", TrailingSite(2), LeadingSite(1), []int{1, 2, 3, 4}},
		{"whole line", LeadingSite(0), LeadingSite(5), []int{0, 5}},
		{"empty", LeadingSite(1), LeadingSite(1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.LogicalRangesForVisualSelection(tt.first, tt.second)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("LogicalRangesForVisualSelection(%v, %v) = %v, want %v", tt.first, tt.second, got, tt.want)
			}
		})
	}
}

func TestBlackBoxBounds(t *testing.T) {
	l := newTestLayout(t, newTestParagraph(t, "ab", FontStyle(monoFace(10).slanted(0.25))))

	r, err := l.BlackBoxBounds(0, 1)
	if err != nil {
		t.Fatalf("BlackBoxBounds() error = %v", err)
	}
	if len(r) != 1 {
		t.Fatalf("len(region) = %d, want 1", len(r))
	}
	want := Polygon{{X: 2, Y: -8}, {X: 12, Y: -8}, {X: 9.5, Y: 2}, {X: -0.5, Y: 2}}
	for i := range want {
		if !approxPoint(r[0][i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, r[0][i], want[i])
		}
	}

	if _, err := l.BlackBoxBounds(1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BlackBoxBounds(1, 0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLayoutRotatedHighlight(t *testing.T) {
	p := newTestParagraph(t, "abcd", FontStyle(monoFace(10)))
	if err := p.SetDecoration(2, 4, Decoration{Transform: Rotate(math.Pi / 2)}); err != nil {
		t.Fatal(err)
	}
	l := newTestLayout(t, p)

	r, err := l.BlackBoxBounds(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	b := r.Bounds()
	want := Rect{MinX: 18, MinY: 0, MaxX: 28, MaxY: 10}
	if math.Abs(b.MinX-want.MinX) > 1e-6 || math.Abs(b.MaxX-want.MaxX) > 1e-6 ||
		math.Abs(b.MinY-want.MinY) > 1e-6 || math.Abs(b.MaxY-want.MaxY) > 1e-6 {
		t.Errorf("rotated box = %+v, want %+v", b, want)
	}

	if got := l.HitTestChar(22, 3); got != LeadingSite(2) {
		t.Errorf("HitTestChar on rotated run = %v, want Leading(2)", got)
	}
}
