package text

import "math"

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing r and o.
// An empty rectangle does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside r (max edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

func rectOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Segment is a straight line between two points. Carets are segments
// running from the top of the line to the bottom.
type Segment struct {
	A, B Point
}

// Polygon is a closed outline; the last point connects back to the first.
type Polygon []Point

// Bounds returns the bounding box of the polygon.
func (p Polygon) Bounds() Rect {
	return rectOf(p...)
}

// Region is a set of polygons combined with the even-odd rule.
// Highlights of bidirectional selections are usually several polygons.
type Region []Polygon

// Bounds returns the bounding box of all polygons.
func (r Region) Bounds() Rect {
	var b Rect
	first := true
	for _, p := range r {
		pb := p.Bounds()
		if first {
			b, first = pb, false
			continue
		}
		b = Rect{
			MinX: math.Min(b.MinX, pb.MinX),
			MinY: math.Min(b.MinY, pb.MinY),
			MaxX: math.Max(b.MaxX, pb.MaxX),
			MaxY: math.Max(b.MaxY, pb.MaxY),
		}
	}
	return b
}

// Affine is a 2x3 affine transform mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F). The zero value is the identity.
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Rotate returns a rotation by angle radians (clockwise on screen, since Y
// points down).
func Rotate(angle float64) Affine {
	s, c := math.Sincos(angle)
	return Affine{A: c, B: s, C: -s, D: c}
}

// IsZero reports whether a is the zero value.
func (a Affine) IsZero() bool {
	return a == Affine{}
}

func (a Affine) effective() Affine {
	if a.IsZero() {
		return Identity()
	}
	return a
}

// IsIdentity reports whether a leaves every point unchanged.
func (a Affine) IsIdentity() bool {
	return a.effective() == Identity()
}

// Apply transforms p.
func (a Affine) Apply(p Point) Point {
	e := a.effective()
	return Point{
		X: e.A*p.X + e.C*p.Y + e.E,
		Y: e.B*p.X + e.D*p.Y + e.F,
	}
}

// baselineDirection returns the unit vector the baseline runs along.
func (a Affine) baselineDirection() Point {
	e := a.effective()
	l := math.Hypot(e.A, e.B)
	if l == 0 {
		return Point{X: 1}
	}
	return Point{X: e.A / l, Y: e.B / l}
}
