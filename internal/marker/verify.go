package marker

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/marker-tools-mcp/internal/detection"
	"github.com/ironsheep/marker-tools-mcp/internal/imaging"
)

const (
	// WindowSize is the side of the neighborhood checked around the marker.
	WindowSize = 30

	// ForegroundLevel is the highest luminance treated as foreground when the
	// neighborhood is binarized: the dark spots on the orange patch.
	ForegroundLevel = 150
)

// KeypointDetector finds corner-like keypoints in a binary image.
type KeypointDetector interface {
	Detect(img *image.Gray) []detection.Keypoint
}

// FeatureSummary describes the keypoints found around the marker centroid.
type FeatureSummary struct {
	// Window is the neighborhood that was examined, in working image pixels.
	Window imaging.Region `json:"window"`

	// Count is the number of keypoints.
	Count int `json:"count"`

	// AverageQuality is the mean keypoint response, 0 when Count is 0.
	AverageQuality float64 `json:"average_quality"`

	// Keypoints are relative to the window's top-left corner.
	Keypoints []detection.Keypoint `json:"keypoints,omitempty"`
}

// Verifier summarizes the local texture around the marker centroid.
type Verifier struct {
	Detector KeypointDetector
}

// Verify crops the WindowSize neighborhood of centroid out of img, binarizes
// it (luminance <= ForegroundLevel becomes white) and runs the detector on it.
//
// img must be the unannotated working image. An empty window or a nil
// detector yields a zero summary.
func (v Verifier) Verify(img *image.NRGBA, centroid r2.Vec) FeatureSummary {
	b := img.Bounds()
	win := FeatureWindow(int(centroid.X), int(centroid.Y), b.Dx(), b.Dy())

	summary := FeatureSummary{
		Window: imaging.Region{X1: win.Min.X, Y1: win.Min.Y, X2: win.Max.X, Y2: win.Max.Y},
	}
	if win.Empty() || v.Detector == nil {
		return summary
	}

	bin := imaging.ThresholdInv(img, win.Add(b.Min), ForegroundLevel)
	kps := v.Detector.Detect(bin)
	if len(kps) == 0 {
		return summary
	}

	responses := make([]float64, len(kps))
	for i, kp := range kps {
		responses[i] = kp.Response
	}

	summary.Count = len(kps)
	summary.AverageQuality = stat.Mean(responses, nil)
	summary.Keypoints = kps
	return summary
}

// FeatureWindow returns the WindowSize×WindowSize window centered on (cx, cy)
// inside a width×height image.
//
// Each axis is clamped on its own: a window running off the low side is
// shifted to start at 0, then one running off the high side is shifted to end
// at the bound. On an axis shorter than WindowSize the second shift would
// push the start below 0; the window then covers the whole axis instead.
func FeatureWindow(cx, cy, width, height int) image.Rectangle {
	x1, x2 := clampAxis(cx, width)
	y1, y2 := clampAxis(cy, height)
	return image.Rect(x1, y1, x2, y2)
}

func clampAxis(c, limit int) (lo, hi int) {
	lo, hi = c-WindowSize/2, c+WindowSize/2
	if lo < 0 {
		lo = 0
		hi = lo + WindowSize
	}
	if hi > limit {
		hi = limit
		lo = hi - WindowSize
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
