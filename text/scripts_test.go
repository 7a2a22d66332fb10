package text

import (
	"slices"
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestResolveScripts(t *testing.T) {
	L, H := language.Latin, language.Hebrew

	tests := []struct {
		name string
		text string
		want []language.Script
	}{
		{"latin", "ab", []language.Script{L, L}},
		{"space takes previous", "a " + alef, []language.Script{L, L, H}},
		{"leading digit takes next", "1a", []language.Script{L, L}},
		{"mark inherits", "e\u0301", []language.Script{L, L}},
		{"all common", "12", []language.Script{language.Common, language.Common}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveScripts([]rune(tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("resolveScripts(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScriptRunLimit(t *testing.T) {
	scripts := resolveScripts([]rune("ab" + alef + bet + "c"))
	for _, tt := range []struct{ start, want int }{{0, 2}, {2, 4}, {4, 5}} {
		if got := scriptRunLimit(scripts, tt.start); got != tt.want {
			t.Errorf("scriptRunLimit(%d) = %d, want %d", tt.start, got, tt.want)
		}
	}
}
