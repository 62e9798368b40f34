package detection

import (
	"image"
	"sort"
)

// Keypoint is a detected corner with its quality score.
type Keypoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Response float64 `json:"response"`
}

// FAST detects corners with the FAST-9 segment test and scores them with the
// Harris corner measure.
type FAST struct {
	// Threshold is the minimum intensity difference between the center pixel
	// and a circle pixel for the circle pixel to count as brighter or darker.
	Threshold int

	// MaxFeatures caps the number of keypoints returned. The strongest
	// responses are kept. Zero or negative means no cap.
	MaxFeatures int
}

// NewFAST creates a FAST detector.
func NewFAST(maxFeatures, threshold int) *FAST {
	return &FAST{Threshold: threshold, MaxFeatures: maxFeatures}
}

const (
	// arcLength is the number of contiguous circle pixels that must all be
	// brighter or all darker than the center.
	arcLength = 9

	harrisK      = 0.04
	harrisRadius = 3

	// border keeps the circle and the Harris window (plus one pixel for the
	// gradient) inside the image.
	border = harrisRadius + 1
)

// circle is the 16-pixel Bresenham circle of radius 3, in clockwise order
// starting from the top.
var circle = [16]image.Point{
	{0, -3}, {1, -3}, {2, -2}, {3, -1},
	{3, 0}, {3, 1}, {2, 2}, {1, 3},
	{0, 3}, {-1, 3}, {-2, 2}, {-3, 1},
	{-3, 0}, {-3, -1}, {-2, -2}, {-1, -3},
}

// Detect returns the keypoints of img sorted by descending response.
//
// Images smaller than 2*4+1 pixels in either dimension have no room for the
// segment test and yield no keypoints.
func (f *FAST) Detect(img *image.Gray) []Keypoint {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 2*border || h <= 2*border {
		return nil
	}

	at := func(x, y int) int {
		return int(img.Pix[y*img.Stride+x])
	}

	// Harris responses of the pixels that pass the segment test.
	responses := make(map[image.Point]float64)
	for y := border; y < h-border; y++ {
		for x := border; x < w-border; x++ {
			if isCorner(at, x, y, f.Threshold) {
				responses[image.Pt(x, y)] = harrisResponse(at, x, y)
			}
		}
	}

	keypoints := make([]Keypoint, 0, len(responses))
	for p, r := range responses {
		if suppressed(responses, p, r) {
			continue
		}
		keypoints = append(keypoints, Keypoint{X: float64(p.X), Y: float64(p.Y), Response: r})
	}

	sort.Slice(keypoints, func(i, j int) bool {
		a, c := keypoints[i], keypoints[j]
		if a.Response != c.Response {
			return a.Response > c.Response
		}
		if a.Y != c.Y {
			return a.Y < c.Y
		}
		return a.X < c.X
	})

	if f.MaxFeatures > 0 && len(keypoints) > f.MaxFeatures {
		keypoints = keypoints[:f.MaxFeatures]
	}
	return keypoints
}

// isCorner runs the segment test at (x, y).
func isCorner(at func(x, y int) int, x, y, threshold int) bool {
	center := at(x, y)

	var states [16]int
	for i, o := range circle {
		v := at(x+o.X, y+o.Y)
		switch {
		case v > center+threshold:
			states[i] = 1
		case v < center-threshold:
			states[i] = -1
		}
	}

	// Walk the circle twice so runs that wrap around index 0 are counted.
	run, prev := 0, 0
	for i := 0; i < 2*len(circle); i++ {
		s := states[i%len(circle)]
		if s != 0 && s == prev {
			run++
		} else if s != 0 {
			run = 1
		} else {
			run = 0
		}
		prev = s
		if run >= arcLength {
			return true
		}
	}
	return false
}

// harrisResponse computes det(M) - k*trace(M)^2 of the structure tensor M
// summed over a (2*harrisRadius+1)^2 window, with intensities scaled to [0,1].
func harrisResponse(at func(x, y int) int, x, y int) float64 {
	var sxx, syy, sxy float64
	for dy := -harrisRadius; dy <= harrisRadius; dy++ {
		for dx := -harrisRadius; dx <= harrisRadius; dx++ {
			px, py := x+dx, y+dy
			ix := float64(at(px+1, py)-at(px-1, py)) / (2 * 255)
			iy := float64(at(px, py+1)-at(px, py-1)) / (2 * 255)
			sxx += ix * ix
			syy += iy * iy
			sxy += ix * iy
		}
	}
	trace := sxx + syy
	return sxx*syy - sxy*sxy - harrisK*trace*trace
}

// suppressed reports whether a neighboring corner outranks p. Ties are broken
// by position so the result does not depend on map iteration order.
func suppressed(responses map[image.Point]float64, p image.Point, r float64) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := image.Pt(p.X+dx, p.Y+dy)
			rq, ok := responses[q]
			if !ok {
				continue
			}
			if rq > r || (rq == r && (q.Y < p.Y || (q.Y == p.Y && q.X < p.X))) {
				return true
			}
		}
	}
	return false
}
