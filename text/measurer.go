package text

import (
	"fmt"
	"slices"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textline"
)

// estimatedLines is how many average lines a window spans after an edit.
const estimatedLines = 2.1

// Measurer measures and lays out lines of one paragraph. It owns a copy of
// the paragraph's characters with digits shaped, the style index over that
// copy and the paragraph's bidi levels, and keeps a window of shaped
// components that later measurements reuse.
//
// A Measurer is not safe for concurrent use.
type Measurer struct {
	cfg       cursorConfig
	assembler *Assembler

	para       *Paragraph
	text       []rune
	index      *StyleIndex
	levels     []int // nil when every level is zero
	paraLevel  int
	scripts    []language.Script
	lineBreaks BreakIterator

	// comps covers [compStart, compLimit) of text.
	comps      []*Component
	compStart  int
	compLimit  int
	haveWindow bool

	layoutCount     int
	layoutCharCount int
}

// NewMeasurer prepares p for measurement.
func NewMeasurer(p *Paragraph, opts ...CursorOption) (*Measurer, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("%w: empty paragraph", ErrInvalidArgument)
	}
	cfg := defaultCursorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Measurer{
		cfg:       cfg,
		assembler: NewAssembler(cfg.shaper),
	}
	m.load(p)
	m.index = buildStyleIndex(p, m.text)
	m.resolveBidi(false)
	return m, nil
}

// load replaces the character buffer with a digit-shaped copy of p.
func (m *Measurer) load(p *Paragraph) {
	m.para = p
	m.text = slices.Clone(p.runes)
	if ds := p.DigitShaper(); ds != nil {
		ds.ShapeDigits(m.text, 0, len(m.text))
	}
	m.scripts = resolveScripts(m.text)
	m.lineBreaks = nil
}

// resolveBidi recomputes the paragraph levels when the paragraph already
// had any, when force is set or when the text needs them.
func (m *Measurer) resolveBidi(force bool) {
	if m.levels == nil && !force && m.para.BaseDirection() != BaseRTL && !RequiresBidi(m.text) {
		m.paraLevel = 0
		return
	}
	levels, paraLevel := m.cfg.bidi.Levels(m.text, m.para.BaseDirection())
	m.paraLevel = paraLevel
	m.levels = levels
	if paraLevel == 0 && !slices.ContainsFunc(levels, func(l int) bool { return l != 0 }) {
		m.levels = nil
	}
}

// Len returns the number of characters in the paragraph.
func (m *Measurer) Len() int { return len(m.text) }

// Generation returns the generation of the paragraph being measured.
func (m *Measurer) Generation() uint64 { return m.para.Generation() }

// Paragraph returns the paragraph being measured.
func (m *Measurer) Paragraph() *Paragraph { return m.para }

// IsLeftToRight reports whether the paragraph runs left to right.
func (m *Measurer) IsLeftToRight() bool { return m.paraLevel%2 == 0 }

// breaks returns the break iterator over the measured characters.
func (m *Measurer) breaks() BreakIterator {
	if m.lineBreaks == nil {
		m.lineBreaks = m.cfg.breaks(m.text)
	}
	return m.lineBreaks
}

func (m *Measurer) invalidate() {
	m.comps = nil
	m.compStart, m.compLimit = 0, 0
	m.haveWindow = false
}

// makeWindow shapes components around start. The first window runs to the
// end of the paragraph; after an edit it spans a few average lines. The
// window is widened to line break boundaries.
func (m *Measurer) makeWindow(start int) {
	n := len(m.text)
	compStart, compLimit := start, n
	if m.layoutCount > 0 && !m.haveWindow {
		avg := max(m.layoutCharCount/m.layoutCount, 1)
		compLimit = min(start+int(float64(avg)*estimatedLines), n)
	}
	if start > 0 || compLimit < n {
		b := m.breaks()
		if start > 0 && !b.IsBoundary(start) {
			compStart = max(b.Preceding(start), 0)
		}
		if compLimit < n && !b.IsBoundary(compLimit) {
			if f := b.Following(compLimit); f >= 0 {
				compLimit = f
			} else {
				compLimit = n
			}
		}
	}
	m.ensureComponents(compStart, compLimit)
	m.haveWindow = true
}

func (m *Measurer) ensureComponents(start, limit int) {
	if m.comps != nil && start >= m.compStart && limit <= m.compLimit {
		return
	}
	comps, err := m.assembler.components(m.index, start, limit, 0, m.levels, m.scripts)
	if err != nil {
		// The index always covers the text, so this only trips on a broken
		// style table; leave the window empty and let the line fail.
		textline.Logger().Warn("text: layout window failed", "start", start, "limit", limit, "err", err)
		m.invalidate()
		return
	}
	m.comps, m.compStart, m.compLimit = comps, start, limit
	textline.Logger().Debug("text: layout window rebuilt",
		"start", start, "limit", limit, "components", len(comps))
}

func (m *Measurer) inWindow(pos int) bool {
	return m.haveWindow && pos >= m.compStart && pos < m.compLimit
}

// LineBreakIndex returns the first offset at or after start whose
// character would push the line's advance past maxAdvance, or Len when the
// rest of the paragraph fits.
func (m *Measurer) LineBreakIndex(start int, maxAdvance float64) (int, error) {
	if err := checkRange("LineBreakIndex", start, 0, len(m.text)); err != nil {
		return 0, err
	}
	if start == len(m.text) {
		return start, nil
	}
	if !m.inWindow(start) {
		m.makeWindow(start)
	}
	return m.calcLineBreak(start, maxAdvance), nil
}

func (m *Measurer) calcLineBreak(start int, maxAdvance float64) int {
	width, pos := maxAdvance, start
	for _, c := range m.comps {
		if c.end <= pos {
			continue
		}
		brk, rest := c.lineBreakIndex(pos, width)
		if brk < c.end {
			return brk
		}
		width, pos = rest, c.end
	}
	if m.compLimit < len(m.text) {
		m.ensureComponents(m.compStart, len(m.text))
		if m.compLimit == len(m.text) {
			return m.calcLineBreak(start, maxAdvance)
		}
	}
	return len(m.text)
}

// AdvanceBetween returns the advance of the characters [start, limit) laid
// out as one line.
func (m *Measurer) AdvanceBetween(start, limit int) (float64, error) {
	line, err := m.Line(start, limit)
	if err != nil {
		return 0, err
	}
	return line.Metrics().Advance, nil
}

// Line lays out characters [start, limit) as one line. Trailing whitespace
// takes the paragraph direction.
func (m *Measurer) Line(start, limit int) (*Line, error) {
	if err := checkRange("Line", start, 0, len(m.text)-1); err != nil {
		return nil, err
	}
	if err := checkRange("Line", limit, start+1, len(m.text)); err != nil {
		return nil, err
	}
	if !m.inWindow(start) {
		m.makeWindow(start)
	}
	m.ensureComponents(min(start, m.compStart), max(limit, m.compLimit))

	var levels []int
	if m.levels != nil {
		levels = lineLevels(m.text[start:limit], m.levels[start:limit], m.paraLevel)
	}

	var comps []*Component
	for _, c := range m.comps {
		if c.end <= start || c.start >= limit {
			continue
		}
		if c.start >= start && c.end <= limit && uniformLevel(levels, c.start-start, c.end-start, c.level) {
			comps = append(comps, c)
			continue
		}
		lo, hi := max(c.start, start), min(c.end, limit)
		sub, err := m.assembler.components(m.index, lo, hi, start, levels, m.scripts[start:limit])
		if err != nil {
			return nil, err
		}
		comps = append(comps, sub...)
	}
	paraLevel := m.paraLevel
	if levels == nil {
		paraLevel = 0
	}
	return newLine(m.text[start:limit], start, comps, levels, paraLevel)
}

func uniformLevel(levels []int, from, to, level int) bool {
	if levels == nil {
		return level == 0
	}
	for _, l := range levels[from:to] {
		if l != level {
			return false
		}
	}
	return true
}

// Layout lays out characters [start, limit) as one line and wraps it in a
// Layout with the paragraph's justification ratio.
func (m *Measurer) Layout(start, limit int) (*Layout, error) {
	line, err := m.Line(start, limit)
	if err != nil {
		return nil, err
	}
	if limit < len(m.text) {
		m.layoutCharCount += limit - start
		m.layoutCount++
	}
	opts := append([]LayoutOption{WithJustificationRatio(m.para.Justification())}, m.cfg.layout...)
	return NewLayout(line, opts...)
}

// InsertChar switches to p, which must be the measured paragraph with one
// character inserted at pos. The style index is patched rather than
// rebuilt where possible.
func (m *Measurer) InsertChar(p *Paragraph, pos int) error {
	if err := m.checkEdit("InsertChar", p, pos, 1); err != nil {
		return err
	}
	m.load(p)
	m.index.insertChar(p, m.text, pos)
	m.resolveBidi(requiresBidi(m.text[pos]))
	m.invalidate()
	return nil
}

// DeleteChar switches to p, which must be the measured paragraph with the
// character at pos removed.
func (m *Measurer) DeleteChar(p *Paragraph, pos int) error {
	if err := m.checkEdit("DeleteChar", p, pos, -1); err != nil {
		return err
	}
	m.load(p)
	m.index.deleteChar(p, m.text, pos)
	m.resolveBidi(false)
	m.invalidate()
	return nil
}

func (m *Measurer) checkEdit(op string, p *Paragraph, pos, delta int) error {
	if p == nil {
		return fmt.Errorf("%w: %s: nil paragraph", ErrInvalidArgument, op)
	}
	if p.Len() != len(m.text)+delta {
		return fmt.Errorf("%w: %s: paragraph has %d characters, want %d",
			ErrInvalidArgument, op, p.Len(), len(m.text)+delta)
	}
	hi := p.Len() - 1
	if delta < 0 {
		hi = len(m.text) - 1
	}
	return checkRange(op, pos, 0, hi)
}
