package transform

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/ironsheep/image-augment/internal/warp"
)

var (
	// ErrInvalidRotationAngle is returned when a non-right-angle rotation of
	// 90 degrees or more is requested; the fill-crop geometry is undefined
	// there.
	ErrInvalidRotationAngle = errors.New("invalid rotation angle")

	// ErrInvalidParameter is returned for out-of-range transform parameters,
	// such as non-positive grid dimensions or a negative magnitude.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Transform is the contract shared by all geometric transforms. Apply
// consumes one image and returns a new one, never mutating the input.
// Randomized transforms draw from rng on every call.
//
// The concrete transforms form a closed set: Skew, Rotate, Shear and
// Distort.
type Transform interface {
	Apply(img image.Image, rng *rand.Rand) (image.Image, error)
}

// inputSize validates that img has a usable, non-empty pixel area and
// returns its dimensions.
func inputSize(img image.Image) (w, h int, err error) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: input image is %dx%d", warp.ErrInvalidDimensions, w, h)
	}
	return w, h, nil
}
