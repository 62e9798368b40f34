// Package detection provides keypoint detectors for small binary images.
//
// The marker feature verifier thresholds a 30×30 neighborhood around the
// marker centroid and asks a detector for corner-like keypoints in it. Only the
// count and the average response of the keypoints are consumed, so any
// detector that reports a location and a quality score per keypoint can be
// plugged in.
//
// # Detectors
//
//   - FAST: pure Go FAST-9 segment test with Harris corner responses. This is
//     the default and needs no native libraries.
//   - ORB: OpenCV ORB through gocv. Only available when built with the
//     "gocv" build tag; otherwise NewORB returns an error.
//
// # Coordinate System
//
// Keypoint coordinates are in pixels of the image passed to Detect, with the
// origin at its top-left corner. X increases rightward, Y downward.
//
// # Responses
//
// Responses are Harris corner scores. They are comparable between keypoints
// of one detector run, not between the FAST and ORB detectors.
package detection
