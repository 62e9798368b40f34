package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Working image dimensions. Every selected region is resampled to this size
// before classification, regardless of how large the selection was.
const (
	WorkingWidth  = 224
	WorkingHeight = 96
)

// MinRegionSide is the smallest selection width or height, in source pixels,
// that is processed.
const MinRegionSide = 4

var (
	// ErrRegionTooSmall is returned when a selection is narrower or shorter
	// than MinRegionSide. No work is performed for such selections.
	ErrRegionTooSmall = errors.New("region too small")

	// ErrRegionOutOfBounds is returned when a selection extends past the image.
	ErrRegionOutOfBounds = errors.New("region outside image bounds")
)

// Region is a rectangular selection in source image coordinates.
//
// (X1, Y1) is inclusive and (X2, Y2) is exclusive once normalized. The corners
// may be supplied in any order, as they are when a selection is dragged up or
// to the left.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Normalize returns r with X1 <= X2 and Y1 <= Y2.
func (r Region) Normalize() Region {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Rect converts the normalized region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	n := r.Normalize()
	return image.Rect(n.X1, n.Y1, n.X2, n.Y2)
}

// Validate checks the region against the minimum size and the image bounds.
func (r Region) Validate(bounds image.Rectangle) error {
	rect := r.Rect()
	if rect.Dx() < MinRegionSide || rect.Dy() < MinRegionSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrRegionTooSmall, rect.Dx(), rect.Dy(), MinRegionSide, MinRegionSide)
	}
	if !rect.In(bounds) {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d) not within (%d,%d)-(%d,%d)",
			ErrRegionOutOfBounds, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// Resample crops region out of img and scales it to the working size with
// nearest-neighbor interpolation.
//
// Nearest-neighbor is required: smoothing filters blend the marker's hard
// color edges into intermediate colors that match none of the classes.
func Resample(img image.Image, region Region) (*image.NRGBA, error) {
	if err := region.Validate(img.Bounds()); err != nil {
		return nil, err
	}
	cropped := imaging.Crop(img, region.Rect())
	return imaging.Resize(cropped, WorkingWidth, WorkingHeight, imaging.NearestNeighbor), nil
}

// Luma converts img to 8-bit grayscale using ITU-R BT.601 weights.
func Luma(img image.Image) *image.Gray {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			// Grayscale sets R=G=B; any channel carries the luminance.
			out.Pix[y*out.Stride+x] = gray.Pix[y*gray.Stride+x*4]
		}
	}
	return out
}
