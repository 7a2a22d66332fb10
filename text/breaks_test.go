package text

import (
	"slices"
	"testing"
)

// boundaries lists every boundary of it by walking Following from 0.
func boundaries(it BreakIterator) []int {
	out := []int{0}
	for b := it.Following(0); b >= 0; b = it.Following(b) {
		out = append(out, b)
	}
	return out
}

func TestNewLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"two words", "hello world", []int{0, 6, 11}},
		{"single word", "hello", []int{0, 5}},
		{"trailing spaces", "a  b  ", []int{0, 3, 6}},
		{"hard break", "ab\ncd", []int{0, 3, 5}},
		{"empty", "", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boundaries(NewLineBreaks([]rune(tt.text)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("NewLineBreaks(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBoundaryList(t *testing.T) {
	b := NewLineBreaks([]rune("hello world"))

	tests := []struct {
		offset        int
		wantFollowing int
		wantPreceding int
		wantBoundary  bool
	}{
		{0, 6, -1, true},
		{3, 6, 0, false},
		{6, 11, 0, true},
		{7, 11, 6, false},
		{11, -1, 6, true},
	}

	for _, tt := range tests {
		if got := b.Following(tt.offset); got != tt.wantFollowing {
			t.Errorf("Following(%d) = %d, want %d", tt.offset, got, tt.wantFollowing)
		}
		if got := b.Preceding(tt.offset); got != tt.wantPreceding {
			t.Errorf("Preceding(%d) = %d, want %d", tt.offset, got, tt.wantPreceding)
		}
		if got := b.IsBoundary(tt.offset); got != tt.wantBoundary {
			t.Errorf("IsBoundary(%d) = %v, want %v", tt.offset, got, tt.wantBoundary)
		}
	}
}

func TestNewSimpleBreaks(t *testing.T) {
	tests := []struct {
		name string
		mode WrapMode
		text string
		want []int
	}{
		{"word", WrapWord, "foo bar-baz", []int{0, 4, 8, 11}},
		{"hyphen chain", WrapWord, "a-b-c", []int{0, 2, 4, 5}},
		{"hyphen after digit", WrapWord, "9-5", []int{0, 2, 3}},
		{"double hyphen", WrapWord, "a--b", []int{0, 3, 4}},
		{"word char", WrapWordChar, "foo bar", []int{0, 4, 7}},
		{"char", WrapChar, "abc", []int{0, 1, 2, 3}},
		{"none", WrapNone, "a b c", []int{0, 5}},
		{"ideographs", WrapWord, "\u4E2D\u6587", []int{0, 1, 2}},
		{"brackets hold", WrapChar, "(a)", []int{0, 3}},
		{"empty", WrapWord, "", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boundaries(NewSimpleBreaks(tt.mode)([]rune(tt.text)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("NewSimpleBreaks(%v)(%q) = %v, want %v", tt.mode, tt.text, got, tt.want)
			}
		})
	}
}

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapWordChar, "WordChar"},
		{WrapNone, "None"},
		{WrapWord, "Word"},
		{WrapChar, "Char"},
		{WrapMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestGraphemeStarts(t *testing.T) {
	got := graphemeStarts([]rune("e\u0301x"))
	want := []bool{true, false, true, true}
	if !slices.Equal(got, want) {
		t.Errorf("graphemeStarts() = %v, want %v", got, want)
	}
	if got := graphemeStarts(nil); !slices.Equal(got, []bool{true}) {
		t.Errorf("graphemeStarts(nil) = %v, want [true]", got)
	}
}
