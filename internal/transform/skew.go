package transform

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/ironsheep/image-augment/internal/geom"
	"github.com/ironsheep/image-augment/internal/warp"
)

// SkewMode selects which corners of the image quadrilateral a skew may
// perturb.
type SkewMode int

const (
	// SkewTilt tilts about either axis, in one of four random directions.
	SkewTilt SkewMode = iota
	// SkewTiltLeftRight tilts about the vertical axis only (left or right).
	SkewTiltLeftRight
	// SkewTiltTopBottom tilts about the horizontal axis only (up or down).
	SkewTiltTopBottom
	// SkewCorner pulls a single random corner along a random axis, one of
	// eight directions.
	SkewCorner
)

// String returns the mode name used by the CLI.
func (m SkewMode) String() string {
	switch m {
	case SkewTiltLeftRight:
		return "tilt-left-right"
	case SkewTiltTopBottom:
		return "tilt-top-bottom"
	case SkewCorner:
		return "corner"
	default:
		return "tilt"
	}
}

// Skew perturbs one or two corners of the image quadrilateral and applies
// the resulting perspective mapping at the original image size.
//
// Magnitude is an inverse-intensity divisor: the skew distance is
// max(w, h) / Magnitude, so larger magnitudes give smaller skews. A zero
// Magnitude draws the distance uniformly from [1, max(w, h)].
type Skew struct {
	Mode      SkewMode
	Magnitude float64
	Resample  warp.Resample
}

// cornerShift displaces one quad corner by a unit direction, later scaled by
// the skew distance.
type cornerShift struct {
	corner int
	dx, dy float64
}

// tiltShifts holds the four tilt directions: left, right, forward, backward.
// Each moves two corners of one edge apart, producing a perspective
// foreshortening about the opposite edge.
var tiltShifts = [4][2]cornerShift{
	{{geom.TopLeft, 0, -1}, {geom.BottomLeft, 0, 1}},     // left
	{{geom.TopRight, 0, -1}, {geom.BottomRight, 0, 1}},   // right
	{{geom.TopLeft, -1, 0}, {geom.TopRight, 1, 0}},       // forward
	{{geom.BottomRight, 1, 0}, {geom.BottomLeft, -1, 0}}, // backward
}

// cornerShifts holds the eight corner-mode directions: each corner pulled
// outward along one axis.
var cornerShifts = [8]cornerShift{
	{geom.TopLeft, -1, 0},
	{geom.TopLeft, 0, -1},
	{geom.TopRight, 1, 0},
	{geom.TopRight, 0, -1},
	{geom.BottomRight, 1, 0},
	{geom.BottomRight, 0, 1},
	{geom.BottomLeft, -1, 0},
	{geom.BottomLeft, 0, 1},
}

// skewDistance returns the corner displacement in pixels for a w×h image.
func skewDistance(w, h int, magnitude float64, rng *rand.Rand) float64 {
	maxSkew := w
	if h > maxSkew {
		maxSkew = h
	}
	if magnitude <= 0 {
		return float64(1 + rng.Intn(maxSkew))
	}
	return float64(maxSkew) / magnitude
}

// Apply skews the image and returns a same-size result.
func (s Skew) Apply(img image.Image, rng *rand.Rand) (image.Image, error) {
	w, h, err := inputSize(img)
	if err != nil {
		return nil, err
	}
	if s.Magnitude < 0 {
		return nil, fmt.Errorf("%w: skew magnitude %g is negative", ErrInvalidParameter, s.Magnitude)
	}

	dist := skewDistance(w, h, s.Magnitude, rng)

	var shifts []cornerShift
	switch s.Mode {
	case SkewTilt:
		shifts = tiltShifts[rng.Intn(4)][:]
	case SkewTiltLeftRight:
		shifts = tiltShifts[rng.Intn(2)][:]
	case SkewTiltTopBottom:
		shifts = tiltShifts[2+rng.Intn(2)][:]
	case SkewCorner:
		i := rng.Intn(8)
		shifts = cornerShifts[i : i+1]
	default:
		return nil, fmt.Errorf("%w: unknown skew mode %d", ErrInvalidParameter, s.Mode)
	}

	src := geom.RectQuad(float64(w), float64(h))
	dst := src
	for _, cs := range shifts {
		dst[cs.corner].X += cs.dx * dist
		dst[cs.corner].Y += cs.dy * dist
	}

	coeffs, err := geom.SolveProjective(src, dst)
	if err != nil {
		return nil, err
	}
	return warp.Perspective(img, coeffs, w, h, s.Resample)
}
