package imaging

import (
	"image"
	"image/color"
)

// DefaultGridColor is used when a Grid has a spacing but no color.
const DefaultGridColor = "#808080"

// Grid describes evenly spaced lines drawn under the other marks, typically
// the classifier's block lattice.
type Grid struct {
	Spacing int    // 0 disables the grid
	Color   string // "#RRGGBB"
}

// drawGrid draws vertical and horizontal lines every spacing pixels,
// starting at spacing so the image border stays untouched.
func drawGrid(img *image.NRGBA, spacing int, c color.NRGBA) {
	if spacing <= 0 {
		return
	}
	b := img.Bounds()

	// Vertical lines
	for x := b.Min.X + spacing; x < b.Max.X; x += spacing {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	// Horizontal lines
	for y := b.Min.Y + spacing; y < b.Max.Y; y += spacing {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
