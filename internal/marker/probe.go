package marker

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Luma probe sampling. Blocks of probeBlock pixels are visited every other
// block on both axes, and every probeStep-th pixel inside a block.
const (
	probeBlock = 16
	probeStep  = 2

	probeMin = 100
	probeMax = 255
)

// ProbeLuma is a quick presence check on a single-channel frame. It samples a
// sparse checkerboard of pixels, keeps those strictly between 100 and 255, and
// returns the upper median of their coordinates on each axis.
//
// The second result is false when no sampled pixel qualifies.
func ProbeLuma(gray *image.Gray) (r2.Vec, bool) {
	b := gray.Bounds()

	var xs, ys []int
	for by := b.Min.Y; by < b.Max.Y; by += 2 * probeBlock {
		for bx := b.Min.X; bx < b.Max.X; bx += 2 * probeBlock {
			for dy := 0; dy < probeBlock; dy += probeStep {
				for dx := 0; dx < probeBlock; dx += probeStep {
					x, y := bx+dx, by+dy
					if x >= b.Max.X || y >= b.Max.Y {
						continue
					}
					v := gray.GrayAt(x, y).Y
					if v > probeMin && v < probeMax {
						xs = append(xs, x-b.Min.X)
						ys = append(ys, y-b.Min.Y)
					}
				}
			}
		}
	}

	if len(xs) == 0 {
		return r2.Vec{}, false
	}
	sort.Ints(xs)
	sort.Ints(ys)
	return r2.Vec{X: float64(xs[len(xs)/2]), Y: float64(ys[len(ys)/2])}, true
}
