//go:build gocv
// +build gocv

package detection

import (
	"image"

	"gocv.io/x/gocv"
)

// ORB detects keypoints with OpenCV's ORB detector.
type ORB struct {
	MaxFeatures   int
	FastThreshold int

	// EdgeThreshold is the border, in pixels, where ORB does not look for
	// features. It also sets the descriptor patch size.
	EdgeThreshold int
}

// NewORB creates an ORB detector with OpenCV's default pyramid settings.
func NewORB(maxFeatures, fastThreshold int) (*ORB, error) {
	return &ORB{
		MaxFeatures:   maxFeatures,
		FastThreshold: fastThreshold,
		EdgeThreshold: 31,
	}, nil
}

// Detect runs ORB over img. Conversion failures yield no keypoints.
func (o *ORB) Detect(img *image.Gray) []Keypoint {
	if img.Bounds().Empty() {
		return nil
	}

	mat, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		return nil
	}
	defer mat.Close()

	orb := gocv.NewORBWithParams(o.MaxFeatures, 1.2, 8, o.EdgeThreshold, 0, 2,
		gocv.ORBScoreTypeHarris, o.EdgeThreshold, o.FastThreshold)
	defer orb.Close()

	kps := orb.Detect(mat)
	keypoints := make([]Keypoint, 0, len(kps))
	for _, kp := range kps {
		keypoints = append(keypoints, Keypoint{X: kp.X, Y: kp.Y, Response: kp.Response})
	}
	return keypoints
}
