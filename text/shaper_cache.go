package text

import (
	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textline/internal/cache"
)

// CachingShaper memoizes the runs shaped by another Shaper. Interactive
// editing re-lays the same words over and over; caching them makes
// re-layout after a keystroke cheap.
//
// Runs are keyed by face, direction, script, text and the characters just
// outside the run, since those can change joining forms.
//
// CachingShaper is safe for concurrent use if the wrapped Shaper is.
type CachingShaper struct {
	shaper Shaper
	runs   *cache.ShardedCache[runKey, []ShapedGlyph]
}

var _ Shaper = (*CachingShaper)(nil)

type runKey struct {
	face          Face
	dir           Direction
	script        language.Script
	text          string
	before, after rune
}

// NewCachingShaper wraps s. capacity is the number of runs kept per cache
// shard; zero or less selects the cache default.
func NewCachingShaper(s Shaper, capacity int) *CachingShaper {
	if s == nil {
		s = &BuiltinShaper{}
	}
	return &CachingShaper{
		shaper: s,
		runs:   cache.NewSharded[runKey, []ShapedGlyph](capacity, cache.ComparableHasher[runKey]()),
	}
}

// Shape implements the Shaper interface. Cached glyphs are stored with
// clusters relative to the run start and rebased on every hit.
func (c *CachingShaper) Shape(in ShapeInput) []ShapedGlyph {
	if in.Face == nil || in.Start >= in.End {
		return nil
	}
	key := runKey{
		face:   in.Face,
		dir:    in.Direction,
		script: in.Script,
		text:   string(in.Text[in.Start:in.End]),
	}
	if in.Start > 0 {
		key.before = in.Text[in.Start-1]
	}
	if in.End < len(in.Text) {
		key.after = in.Text[in.End]
	}

	relative := c.runs.GetOrCreate(key, func() []ShapedGlyph {
		glyphs := c.shaper.Shape(in)
		for i := range glyphs {
			glyphs[i].Cluster -= in.Start
		}
		return glyphs
	})

	out := make([]ShapedGlyph, len(relative))
	for i, g := range relative {
		g.Cluster += in.Start
		out[i] = g
	}
	return out
}

// Stats returns the run cache statistics.
func (c *CachingShaper) Stats() cache.Stats {
	return c.runs.Stats()
}
