package transform

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/ironsheep/image-augment/internal/geom"
	"github.com/ironsheep/image-augment/internal/warp"
)

// Axis names the shear direction.
type Axis int

const (
	// AxisRandom picks X or Y per invocation.
	AxisRandom Axis = iota
	AxisX
	AxisY
)

// Shear slants an image along one axis, crops away the blank wedge the slant
// introduces, and resamples back to the original size.
//
// The shear angle is drawn uniformly from [-MaxLeft, MaxRight] degrees
// unless Angle is non-zero, in which case the fixed angle is used. Both
// bounds are positive magnitudes and must be below 90.
type Shear struct {
	// Angle forces a fixed shear in degrees when non-zero.
	Angle float64

	// MaxLeft and MaxRight bound the random draw (positive magnitudes).
	MaxLeft, MaxRight float64

	Axis     Axis
	Resample warp.Resample
}

// shearGeometry carries everything needed to apply one shear: the affine
// coefficients (output to source), the expanded canvas, and the window that
// removes the blank wedge.
type shearGeometry struct {
	coeffs  geom.AffineCoeffs
	canvasW int
	canvasH int
	window  image.Rectangle
}

// shearGeometryX computes the geometry for a shear along the x axis.
// Positive angles shift content left-to-right down the image, so the matrix
// carries a compensating offset; negative angles keep a zero offset and a
// negated slope. The two cases are mirrored, not identical.
func shearGeometryX(angle float64, w, h int) shearGeometry {
	slope := math.Tan(angle * math.Pi / 180)
	shift := slope * float64(h)

	var shiftPx int
	if shift > 0 {
		shiftPx = int(math.Ceil(shift))
	} else {
		shiftPx = int(math.Floor(shift))
	}

	offset := shiftPx
	if angle <= 0 {
		shiftPx = -shiftPx
		offset = 0
		slope = -math.Abs(slope)
	}

	return shearGeometry{
		coeffs:  geom.AffineCoeffs{1, slope, -float64(offset), 0, 1, 0},
		canvasW: w + shiftPx,
		canvasH: h,
		window:  image.Rect(shiftPx, 0, w, h),
	}
}

// shearGeometryY is shearGeometryX with the axes transposed.
func shearGeometryY(angle float64, w, h int) shearGeometry {
	slope := math.Tan(angle * math.Pi / 180)
	shift := slope * float64(w)

	var shiftPx int
	if shift > 0 {
		shiftPx = int(math.Ceil(shift))
	} else {
		shiftPx = int(math.Floor(shift))
	}

	offset := shiftPx
	if angle <= 0 {
		shiftPx = -shiftPx
		offset = 0
		slope = -math.Abs(slope)
	}

	return shearGeometry{
		coeffs:  geom.AffineCoeffs{1, 0, 0, slope, 1, -float64(offset)},
		canvasW: w,
		canvasH: h + shiftPx,
		window:  image.Rect(0, shiftPx, w, h),
	}
}

// Apply shears the image and returns a same-size result.
func (s Shear) Apply(img image.Image, rng *rand.Rand) (image.Image, error) {
	w, h, err := inputSize(img)
	if err != nil {
		return nil, err
	}

	angle, err := s.angle(rng)
	if err != nil {
		return nil, err
	}

	axis := s.Axis
	if axis == AxisRandom {
		if rng.Intn(2) == 0 {
			axis = AxisX
		} else {
			axis = AxisY
		}
	}

	var g shearGeometry
	switch axis {
	case AxisX:
		g = shearGeometryX(angle, w, h)
	case AxisY:
		g = shearGeometryY(angle, w, h)
	default:
		return nil, fmt.Errorf("%w: unknown shear axis %d", ErrInvalidParameter, s.Axis)
	}

	sheared, err := warp.Affine(img, g.coeffs, g.canvasW, g.canvasH, s.Resample)
	if err != nil {
		return nil, err
	}
	cropped, err := warp.Crop(sheared, g.window)
	if err != nil {
		return nil, err
	}
	return warp.ResizeTo(cropped, w, h, s.Resample)
}

func (s Shear) angle(rng *rand.Rand) (float64, error) {
	if s.Angle != 0 {
		if math.Abs(s.Angle) >= 90 {
			return 0, fmt.Errorf("%w: shear angle %g out of range (-90, 90)", ErrInvalidParameter, s.Angle)
		}
		return s.Angle, nil
	}
	left := math.Abs(s.MaxLeft)
	right := math.Abs(s.MaxRight)
	if left >= 90 || right >= 90 || left+right == 0 {
		return 0, fmt.Errorf("%w: shear bounds (%g, %g)", ErrInvalidParameter, s.MaxLeft, s.MaxRight)
	}
	return -left + rng.Float64()*(left+right), nil
}
