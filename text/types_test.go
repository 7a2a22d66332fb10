package text

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Direction
	}{
		{0, DirectionLTR},
		{1, DirectionRTL},
		{2, DirectionLTR},
		{3, DirectionRTL},
	}

	for _, tt := range tests {
		if got := directionForLevel(tt.level); got != tt.want {
			t.Errorf("directionForLevel(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestBaseDirectionString(t *testing.T) {
	tests := []struct {
		base BaseDirection
		want string
	}{
		{BaseAuto, "Auto"},
		{BaseLTR, "LTR"},
		{BaseRTL, "RTL"},
		{BaseDirection(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.base.String(); got != tt.want {
			t.Errorf("BaseDirection(%d).String() = %q, want %q", tt.base, got, tt.want)
		}
	}
}
