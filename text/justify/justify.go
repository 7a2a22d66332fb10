package justify

import (
	"fmt"
	"math"
)

// Justify distributes delta over records[start:limit] and returns a slice of
// 2*len(records) values: the left and right adjustment of each record.
// Records outside [start, limit) get zeros. A positive delta grows the line,
// a negative one shrinks it.
//
// A tier whose total weight is zero cannot take a proportional share, so it
// is treated as hitting its limit: its sides move to their limits and the
// rest carries on to the next tier.
//
// When every tier has been visited and delta remains, the lowest priority
// tier that had participants is visited again and the remainder is split by
// weight (or evenly, if the tier has no weight), ignoring limits. The only
// case that drops delta is a range with no movable side at all: a single
// record, or a range whose records all sit in no tier.
func Justify(records []Record, start, limit int, delta float64) ([]float64, error) {
	if start < 0 || limit > len(records) || start > limit {
		return nil, fmt.Errorf("%w: [%d, %d) of %d records", ErrInvalidRange, start, limit, len(records))
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, fmt.Errorf("%w: delta %v", ErrInvalidRange, delta)
	}
	for i := start; i < limit; i++ {
		if err := records[i].validate(i); err != nil {
			return nil, err
		}
	}

	deltas := make([]float64, 2*len(records))
	if delta == 0 || start == limit {
		return deltas, nil
	}

	grow := delta > 0
	fallback := -1

	for p := 0; delta != 0; p++ {
		lastPass := p > int(MaxPriority)
		if lastPass {
			if fallback < 0 {
				break
			}
			p = fallback
		}
		prio := Priority(p)

		t := collectTier(records, start, limit, prio, grow)
		if t.participants && !lastPass {
			fallback = p
		}

		if !lastPass && t.weight == 0 && math.IsInf(t.limit, 0) {
			continue
		}
		if lastPass {
			distributeRemainder(records, start, limit, prio, grow, t, delta, deltas)
			break
		}

		hitLimit := t.weight == 0 || (grow && delta >= t.limit) || (!grow && delta <= t.limit)
		absorbing := hitLimit && t.absorbWeight > 0

		var perWeight, perAbsorb float64
		if t.weight > 0 {
			perWeight = delta / t.weight
		}
		if absorbing {
			perAbsorb = (delta - t.limit) / t.absorbWeight
		}

		forEachSide(records, start, limit, prio, grow, func(i, side int, lim float64) {
			r := &records[i]
			var d float64
			if hitLimit {
				d = lim
				if absorbing && r.absorbs(grow) {
					d += r.Weight * perAbsorb
				}
			} else {
				d = r.Weight * perWeight
			}
			deltas[2*i+side] += d
		})

		if hitLimit && !absorbing {
			delta -= t.limit
			continue
		}
		delta = 0
	}
	return deltas, nil
}

// tier sums the weights and signed limits of one priority tier.
type tier struct {
	participants bool
	sides        int
	weight       float64
	absorbWeight float64
	limit        float64
}

func collectTier(records []Record, start, limit int, p Priority, grow bool) tier {
	var t tier
	for i := start; i < limit; i++ {
		if records[i].priority(grow) == p {
			t.participants = true
			break
		}
	}
	forEachSide(records, start, limit, p, grow, func(i, _ int, lim float64) {
		r := &records[i]
		t.sides++
		t.weight += r.Weight
		t.limit += lim
		if r.absorbs(grow) {
			t.absorbWeight += r.Weight
		}
	})
	return t
}

// forEachSide visits every movable side of the records in tier p. Side 0 is
// the left side and side 1 the right side. The left side of the first record
// and the right side of the last record are skipped.
func forEachSide(records []Record, start, limit int, p Priority, grow bool, fn func(i, side int, lim float64)) {
	for i := start; i < limit; i++ {
		r := &records[i]
		if r.priority(grow) != p {
			continue
		}
		left, right := r.limits(grow)
		if i != start {
			fn(i, 0, left)
		}
		if i+1 != limit {
			fn(i, 1, right)
		}
	}
}

func distributeRemainder(records []Record, start, limit int, p Priority, grow bool, t tier, delta float64, deltas []float64) {
	if t.sides == 0 {
		return
	}
	even := delta / float64(t.sides)
	forEachSide(records, start, limit, p, grow, func(i, side int, _ float64) {
		if t.weight > 0 {
			deltas[2*i+side] += records[i].Weight * delta / t.weight
			return
		}
		deltas[2*i+side] += even
	})
}
