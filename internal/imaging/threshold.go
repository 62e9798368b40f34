package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// ThresholdInv crops rect out of img, converts it to grayscale and returns a
// binary image in which pixels with luminance <= level are white (255) and
// brighter pixels are black (0).
//
// The returned image has its origin at (0,0). An empty rect (or one that does
// not intersect img) yields an empty image.
func ThresholdInv(img image.Image, rect image.Rectangle, level uint8) *image.Gray {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}

	gray := Luma(imaging.Crop(img, rect))

	// The gray value is compared as is; R=G=B after converting a Gray image.
	bin := adjust.Apply(gray, func(c color.RGBA) color.RGBA {
		var v uint8
		if c.R <= level {
			v = 255
		}
		return color.RGBA{R: v, G: v, B: v, A: 255}
	})

	out := image.NewGray(gray.Bounds())
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			out.Pix[y*out.Stride+x] = bin.Pix[y*bin.Stride+x*4]
		}
	}
	return out
}
