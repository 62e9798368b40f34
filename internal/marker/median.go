package marker

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Median returns the per-axis median of points: the median of the X values
// and, independently, the median of the Y values. With an even count the two
// middle values are averaged. ok is false when points is empty.
//
// The median keeps a few misclassified stray cells from dragging the
// estimate the way a mean would.
func Median(points []Point) (c r2.Vec, ok bool) {
	if len(points) == 0 {
		return r2.Vec{}, false
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}
	return r2.Vec{X: median(xs), Y: median(ys)}, true
}

// median sorts v in place.
func median(v []float64) float64 {
	sort.Float64s(v)
	n := len(v)
	if n%2 == 1 {
		return v[n/2]
	}
	return (v[n/2-1] + v[n/2]) / 2
}
