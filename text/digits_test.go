package text

import "testing"

func TestDigits(t *testing.T) {
	text := []rune("a1 29")
	Digits{Set: ArabicIndicDigits}.ShapeDigits(text, 0, 4)
	want := "a\u0661 \u06629"
	if string(text) != want {
		t.Errorf("ShapeDigits() = %q, want %q", string(text), want)
	}
}

func TestContextualDigits(t *testing.T) {
	const (
		arabicAlef = "\u0627"
		devaKa     = "\u0915"
	)

	tests := []struct {
		name   string
		shaper ContextualDigits
		text   string
		start  int
		want   string
	}{
		{"no context", ContextualDigits{}, "12", 0, "12"},
		{"default set", ContextualDigits{Default: ThaiDigits}, "1", 0, "\u0E51"},
		{"arabic context", ContextualDigits{}, arabicAlef + " 1", 0, arabicAlef + " \u0661"},
		{"latin resets", ContextualDigits{}, arabicAlef + "a1", 0, arabicAlef + "a1"},
		{"context before start", ContextualDigits{}, devaKa + " 12", 2, devaKa + " \u0967\u0968"},
		{"strong mark resets", ContextualDigits{}, arabicAlef + "\u200E1", 0, arabicAlef + "\u200E1"},
		{"neutrals keep context", ContextualDigits{}, arabicAlef + "-.(1", 0, arabicAlef + "-.(\u0661"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := []rune(tt.text)
			tt.shaper.ShapeDigits(text, tt.start, len(text))
			if string(text) != tt.want {
				t.Errorf("ShapeDigits(%q) = %q, want %q", tt.text, string(text), tt.want)
			}
		})
	}
}
