package text

import "testing"

func TestRuneTable(t *testing.T) {
	tab := newRuneTable()

	if _, ok := tab.lookup('a'); ok {
		t.Error("lookup('a') on an empty table reported a value")
	}

	tests := []struct {
		r rune
		v uint8
	}{
		{'a', 0},
		{'b', 1},
		{0x05D0, 3},    // another page
		{0x1F600, 254}, // largest storable value
	}
	for _, tt := range tests {
		tab.store(tt.r, tt.v)
	}
	for _, tt := range tests {
		if got, ok := tab.lookup(tt.r); !ok || got != tt.v {
			t.Errorf("lookup(%U) = %d, %v, want %d, true", tt.r, got, ok, tt.v)
		}
	}
	if got := tab.len(); got != len(tests) {
		t.Errorf("len() = %d, want %d", got, len(tests))
	}

	tab.store('z', 0xFF)
	if _, ok := tab.lookup('z'); ok {
		t.Error("store('z', 255) should be ignored")
	}

	calls := 0
	compute := func(rune) uint8 { calls++; return 7 }
	for range 3 {
		if got := tab.memo('q', compute); got != 7 {
			t.Errorf("memo('q') = %d, want 7", got)
		}
	}
	if calls != 1 {
		t.Errorf("memo computed %d times, want 1", calls)
	}

	tab.clear()
	if got := tab.len(); got != 0 {
		t.Errorf("len() after clear = %d, want 0", got)
	}
}
