package text

import "math"

// BaselinePath maps line coordinates to device coordinates for lines whose
// components run along transformed baselines. In line coordinates X is the
// advance along the path and Y the perpendicular offset from it (down is
// positive). The path is a chain of straight segments, one per component
// in visual order.
type BaselinePath struct {
	segs []pathSegment
}

type pathSegment struct {
	start  float64 // advance at the segment start
	length float64
	origin Point // device position of the segment start
	dir    Point // unit direction
}

// newBaselinePath chains one segment per (advance, direction) pair starting
// at the device origin.
func newBaselinePath(starts, lengths []float64, dirs []Point) *BaselinePath {
	p := &BaselinePath{segs: make([]pathSegment, len(starts))}
	origin := Point{}
	for i := range starts {
		s := pathSegment{start: starts[i], length: lengths[i], origin: origin, dir: dirs[i]}
		p.segs[i] = s
		origin = s.at(s.length, 0)
	}
	return p
}

// at returns the device point at advance a from the segment start and
// offset o from its line.
func (s pathSegment) at(a, o float64) Point {
	return Point{
		X: s.origin.X + s.dir.X*a - s.dir.Y*o,
		Y: s.origin.Y + s.dir.Y*a + s.dir.X*o,
	}
}

func (p *BaselinePath) segmentFor(advance float64) pathSegment {
	i := len(p.segs) - 1
	for i > 0 && p.segs[i].start > advance {
		i--
	}
	return p.segs[i]
}

// PathToPoint maps a line point to device space.
func (p *BaselinePath) PathToPoint(pt Point) Point {
	if p == nil || len(p.segs) == 0 {
		return pt
	}
	s := p.segmentFor(pt.X)
	return s.at(pt.X-s.start, pt.Y)
}

// PointToPath maps a device point to the line point of the nearest
// segment.
func (p *BaselinePath) PointToPath(pt Point) Point {
	if p == nil || len(p.segs) == 0 {
		return pt
	}
	best := Point{}
	bestDist := math.Inf(1)
	for i, s := range p.segs {
		dx, dy := pt.X-s.origin.X, pt.Y-s.origin.Y
		a := dx*s.dir.X + dy*s.dir.Y
		o := -dx*s.dir.Y + dy*s.dir.X

		ca := a
		if i > 0 {
			ca = max(ca, 0)
		}
		if i < len(p.segs)-1 {
			ca = min(ca, s.length)
		}
		q := s.at(ca, 0)
		d := math.Hypot(pt.X-q.X, pt.Y-q.Y)
		if d < bestDist {
			bestDist = d
			best = Point{X: s.start + a, Y: o}
		}
	}
	return best
}

// mapPolygon maps every vertex of poly to device space.
func (p *BaselinePath) mapPolygon(poly Polygon) Polygon {
	if p == nil {
		return poly
	}
	out := make(Polygon, len(poly))
	for i, pt := range poly {
		out[i] = p.PathToPoint(pt)
	}
	return out
}
