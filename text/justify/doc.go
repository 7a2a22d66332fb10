// Package justify distributes extra or missing line width across glyphs.
//
// Every glyph contributes a Record describing how willing it is to grow or
// shrink on its left and right sides. Justify walks the priority tiers from
// Kashida to None, handing each tier as much of the remaining delta as its
// limits allow. A tier whose limit is reached pins its glyphs to those limits
// and, if any of them absorb, soaks up the rest of the delta. A tier whose
// limit is not reached takes the remaining delta in proportion to weight
// and justification stops.
//
// The outer side of the first glyph and of the last glyph in the range never
// move, so the line stays anchored at both ends.
package justify
