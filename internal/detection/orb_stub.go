//go:build !gocv
// +build !gocv

package detection

import (
	"errors"
	"image"
)

// ORB is unavailable without the gocv build tag.
type ORB struct {
	MaxFeatures   int
	FastThreshold int
	EdgeThreshold int
}

// NewORB returns an error when the binary is built without the gocv tag.
func NewORB(maxFeatures, fastThreshold int) (*ORB, error) {
	return nil, errors.New("gocv build tag is not enabled")
}

// Detect reports no keypoints when built without the gocv tag.
func (o *ORB) Detect(img *image.Gray) []Keypoint {
	return nil
}
