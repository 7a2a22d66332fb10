package text

import "sync"

// runeTable memoizes a small per-rune value, such as glyph coverage or the
// index of the fallback face that covers a rune. Zero means "not computed",
// so callers store value+1.
//
// Storage is split into 256-rune pages allocated on first write; text in a
// handful of scripts touches only a few pages.
//
// runeTable is safe for concurrent use.
type runeTable struct {
	mu    sync.RWMutex
	pages map[rune]*[256]uint8
}

func newRuneTable() *runeTable {
	return &runeTable{pages: make(map[rune]*[256]uint8)}
}

// lookup returns the value stored for r and whether one was stored.
func (t *runeTable) lookup(r rune) (uint8, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	page, ok := t.pages[r>>8]
	if !ok {
		return 0, false
	}
	v := page[r&0xFF]
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}

// store records v for r. Values above 254 are not representable.
func (t *runeTable) store(r rune, v uint8) {
	if v == 0xFF {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	page, ok := t.pages[r>>8]
	if !ok {
		page = new([256]uint8)
		t.pages[r>>8] = page
	}
	page[r&0xFF] = v + 1
}

// memo returns the stored value for r, computing and storing it with f on
// a miss.
func (t *runeTable) memo(r rune, f func(rune) uint8) uint8 {
	if v, ok := t.lookup(r); ok {
		return v
	}
	v := f(r)
	t.store(r, v)
	return v
}

// len reports the number of runes with a stored value.
func (t *runeTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, page := range t.pages {
		for _, v := range page {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func (t *runeTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.pages)
}
