// Package marker locates the directional marker printed on a checker-board
// fiducial inside a resampled working image.
//
// A run goes through five stages, each a pure function of its inputs:
//
//  1. Classify: sparse lattice sampling of the 224×96 working image, labeling
//     cells orange, white or darker orange from quantized channel levels.
//  2. Median: per-axis median of each class's sample points.
//  3. BuildHeading: a triangle from the white apex through the orange
//     centroid, encoding the marker's position and facing direction.
//  4. SecondaryPoint: median of the darker-orange points inside the triangle.
//  5. Verifier: keypoint summary of the 30×30 neighborhood around the orange
//     centroid, thresholded to a binary image first.
//
// Locate chains the stages for one working image. Missing results (no orange
// cells, no white cell close enough, nothing inside the triangle) are
// reported as nil fields of Result, never as errors.
//
// All points share the working image's coordinate frame: origin at the
// top-left, X rightward, Y downward.
package marker
