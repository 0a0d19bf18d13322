// Package transform implements the parametrized geometric image transforms
// used for dataset augmentation: perspective skew, rotation with fill-crop,
// shear, and localized elastic grid distortion.
//
// Each transform is a small parameter struct satisfying the Transform
// interface. Parameters are immutable per-invocation configuration; a
// transform value can be reused across calls and goroutines.
//
// # Randomness
//
// Randomized transforms draw fresh values on every Apply from the *rand.Rand
// handle passed by the caller. There is no package-level RNG: callers that
// need reproducible output seed their own source, and concurrent callers
// must give each invocation its own handle (rand.Rand is not safe for
// concurrent use).
//
// # Geometry conventions
//
// Angles are in degrees. Positive rotation angles are counter-clockwise.
// The output image always has the same dimensions as the input: transforms
// that shrink content (rotation, shear) crop the largest useful window and
// resample it back to the original size.
//
// # Errors
//
// All errors are detected synchronously at the point of invocation and are
// recoverable: ErrInvalidRotationAngle and ErrInvalidParameter from this
// package, geom.ErrSingularTransform from degenerate skew solves, and
// warp.ErrInvalidDimensions for zero-area inputs or outputs. Nothing is
// retried internally and partial results are never returned.
package transform
