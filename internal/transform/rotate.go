package transform

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-augment/internal/warp"
)

// Rotate rotates an image and returns a same-size result: the canvas is
// first expanded so nothing is clipped, then the largest axis-aligned window
// of the original aspect ratio is cropped from the rotated content and
// resampled back to the original dimensions.
//
// Exact multiples of 90 degrees skip the crop entirely and perform a
// lossless right-angle rotation (the output dimensions swap for odd
// multiples).
//
// When MaxLeft or MaxRight is set, Apply draws a random angle from
// [-MaxLeft, -5] or [5, MaxRight] (one side chosen by coin flip); otherwise
// the fixed Angle is used. Both bounds must lie in [5, 90) in range mode.
type Rotate struct {
	// Angle is the fixed rotation in degrees, positive counter-clockwise.
	// Ignored when MaxLeft or MaxRight is non-zero.
	Angle float64

	// MaxLeft and MaxRight bound the random draw, both given as positive
	// magnitudes in degrees.
	MaxLeft, MaxRight float64

	// Fill is the color behind the empty corners of the expanded canvas.
	// Nil means fully transparent.
	Fill color.Color

	Resample warp.Resample
}

// Apply rotates the image.
func (r Rotate) Apply(img image.Image, rng *rand.Rand) (image.Image, error) {
	w, h, err := inputSize(img)
	if err != nil {
		return nil, err
	}

	angle, err := r.angle(rng)
	if err != nil {
		return nil, err
	}

	if k := int(angle); angle == float64(k) && k%90 == 0 {
		return rotateRight(img, k), nil
	}
	if math.Abs(angle) >= 90 {
		return nil, fmt.Errorf("%w: %.4g degrees (must be a right angle or within (-90, 90))",
			ErrInvalidRotationAngle, angle)
	}

	fill := r.Fill
	if fill == nil {
		fill = color.Transparent
	}
	rotated := warp.RotateExpand(img, angle, fill)
	eb := rotated.Bounds()

	window := rotationCropWindow(angle, eb.Dx(), eb.Dy())
	cropped, err := warp.Crop(rotated, window)
	if err != nil {
		return nil, err
	}
	return warp.ResizeTo(cropped, w, h, r.Resample)
}

// angle picks the rotation for this invocation.
func (r Rotate) angle(rng *rand.Rand) (float64, error) {
	if r.MaxLeft == 0 && r.MaxRight == 0 {
		return r.Angle, nil
	}
	left := math.Abs(r.MaxLeft)
	right := math.Abs(r.MaxRight)
	if left < 5 || left >= 90 || right < 5 || right >= 90 {
		return 0, fmt.Errorf("%w: rotation bounds (%g, %g) must lie in [5, 90)",
			ErrInvalidParameter, r.MaxLeft, r.MaxRight)
	}
	if rng.Intn(2) == 0 {
		return -float64(5 + rng.Intn(int(left)-4)), nil
	}
	return float64(5 + rng.Intn(int(right)-4)), nil
}

// rotateRight performs a lossless rotation by a multiple of 90 degrees.
func rotateRight(img image.Image, degrees int) image.Image {
	switch ((degrees / 90 % 4) + 4) % 4 {
	case 1:
		return imaging.Rotate90(img)
	case 2:
		return imaging.Rotate180(img)
	case 3:
		return imaging.Rotate270(img)
	default:
		return imaging.Clone(img)
	}
}

// rotationCropWindow computes the largest axis-aligned rectangle of the
// pre-rotation aspect ratio that fits inside content rotated by angle
// degrees, given the expanded canvas dimensions X×Y. With a = |angle| and
// b = 90 − a:
//
//	E = (sin a / sin b) · (Y − X · sin a / sin b) / (1 − sin²a / sin²b)
//	A = (sin a / sin b) · (X − E)
//
// and the window is (round(E), round(A)) to (round(X−E), round(Y−A)).
// An angle of zero yields the full canvas.
func rotationCropWindow(angle float64, x, y int) image.Rectangle {
	a := math.Abs(angle) * math.Pi / 180
	b := math.Pi/2 - a
	ratio := math.Sin(a) / math.Sin(b)

	e := ratio * (float64(y) - float64(x)*ratio)
	if denom := 1 - ratio*ratio; math.Abs(denom) > 1e-9 {
		e /= denom
	}
	aOff := ratio * (float64(x) - e)

	// Keep the window inside the canvas even where the formula degenerates
	// (steep angles on elongated images push an inset past the midline).
	left := clampInset(e, x)
	top := clampInset(aOff, y)
	return image.Rect(left, top, x-left, y-top)
}

// clampInset rounds a crop inset and restricts it to [0, extent/2) so the
// resulting window is never empty or inverted.
func clampInset(v float64, extent int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	inset := int(math.Round(v))
	if limit := extent/2 - 1; inset > limit {
		return limit
	}
	return inset
}
