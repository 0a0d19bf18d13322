package warp

import "errors"

// ErrInvalidDimensions is returned when a primitive is asked to produce an
// output with a non-positive width or height. No warp may silently produce a
// zero-area image.
var ErrInvalidDimensions = errors.New("invalid output dimensions")
