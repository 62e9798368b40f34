package marker

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Heading triangle geometry, in working image pixels.
const (
	// CloseRadius is the largest distance from the orange centroid at which a
	// white sample point still belongs to the marker.
	CloseRadius = 40.0

	// HalfWidth is the distance of each far vertex from the heading axis.
	HalfWidth = 40.0

	// Depth is how many direction lengths the far edge lies past the orange
	// centroid.
	Depth = 3.0
)

// Triangle is the heading triangle {apex, left, right}.
type Triangle [3]r2.Vec

// Heading is the marker pose derived from the orange centroid and the white
// cells around it.
type Heading struct {
	// Apex is the median of the close white points.
	Apex r2.Vec

	// Direction points from the apex to the orange centroid.
	Direction r2.Vec

	// Perpendicular is Direction rotated by 90° and scaled to HalfWidth, or
	// the zero vector when Direction is zero.
	Perpendicular r2.Vec

	Triangle Triangle

	// Close are the white points within CloseRadius of the orange centroid.
	Close []Point
}

// BuildHeading derives the heading triangle from the orange centroid and the
// white sample points. ok is false when no white point lies within
// CloseRadius of orange.
//
// The triangle's apex is the white median; its far edge is centered Depth
// direction lengths past the orange centroid and spans 2*HalfWidth across the
// heading. When the apex coincides with the orange centroid the triangle
// collapses to a point instead of failing.
func BuildHeading(orange r2.Vec, white []Point) (h Heading, ok bool) {
	near := closePoints(orange, white, CloseRadius)
	apex, ok := Median(near)
	if !ok {
		return Heading{}, false
	}

	dir := r2.Sub(orange, apex)
	perp := Perpendicular(dir, HalfWidth)
	base := r2.Add(orange, r2.Scale(Depth, dir))

	return Heading{
		Apex:          apex,
		Direction:     dir,
		Perpendicular: perp,
		Triangle:      Triangle{apex, r2.Add(base, perp), r2.Sub(base, perp)},
		Close:         near,
	}, true
}

// Perpendicular rotates dir by 90° to (-dir.Y, dir.X) and scales it to
// length. A zero dir yields the zero vector.
func Perpendicular(dir r2.Vec, length float64) r2.Vec {
	n := r2.Norm(dir)
	if n == 0 {
		return r2.Vec{}
	}
	return r2.Vec{X: -dir.Y / n * length, Y: dir.X / n * length}
}

func closePoints(center r2.Vec, points []Point, radius float64) []Point {
	var near []Point
	for _, p := range points {
		d := r2.Sub(r2.Vec{X: float64(p.X), Y: float64(p.Y)}, center)
		if r2.Norm(d) <= radius {
			near = append(near, p)
		}
	}
	return near
}
