// Package imaging provides the image plumbing around the marker locator:
// loading and caching source frames, turning a selection into the fixed-size
// working image, binarizing neighborhoods, sampling pixels and rendering
// result overlays.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based, with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward:
//   - Region corners are source image pixels; (x1,y1) is inclusive and
//     (x2,y2) is exclusive once the region is normalized.
//   - Everything derived from a region (sample points, centroids, overlay
//     vertices) is in working image pixels, 224x96, regardless of how large
//     the selection was.
//
// # Working Image
//
// Resample crops the selection and scales it to WorkingWidth x WorkingHeight
// with nearest-neighbor interpolation. Every other interpolation blends the
// marker's hard color edges into colors no class matches.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless and never modify their inputs.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Selections smaller than MinRegionSide (ErrRegionTooSmall)
//   - Selections outside the image (ErrRegionOutOfBounds)
//   - File I/O and decoding errors during image loading
//   - Invalid overlay colors and PNG encoding errors
//   - Sample coordinates outside the image
package imaging
