package marker

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Contains reports whether p lies inside t.
//
// p is inside when the cross products of p against the three edges
// apex→left, left→right and right→apex all fall on the same side of zero,
// whichever way the triangle is wound. Points on an edge count as on the
// positive side, so a triangle collapsed to a single point contains
// everything.
func (t Triangle) Contains(p r2.Vec) bool {
	b1 := side(p, t[0], t[1]) < 0
	b2 := side(p, t[1], t[2]) < 0
	b3 := side(p, t[2], t[0]) < 0
	return b1 == b2 && b2 == b3
}

// side is the cross product (p1-p3)×(p2-p3): its sign tells which side of the
// line through p2 and p3 the point p1 is on.
func side(p1, p2, p3 r2.Vec) float64 {
	return r2.Cross(r2.Sub(p1, p3), r2.Sub(p2, p3))
}

// Inside returns the points of ps that lie inside t, in their original order.
func Inside(ps []Point, t Triangle) []Point {
	var in []Point
	for _, p := range ps {
		if t.Contains(r2.Vec{X: float64(p.X), Y: float64(p.Y)}) {
			in = append(in, p)
		}
	}
	return in
}

// SecondaryPoint returns the median of the darker-orange points inside the
// heading triangle together with those points. ok is false when none are
// inside.
func SecondaryPoint(darker []Point, t Triangle) (c r2.Vec, inside []Point, ok bool) {
	inside = Inside(darker, t)
	c, ok = Median(inside)
	return c, inside, ok
}
