package warp

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-augment/internal/geom"
)

// Perspective applies a projective warp to img, producing an output of the
// given size. The coefficients map output pixel coordinates to source
// coordinates, as produced by geom.SolveProjective.
func Perspective(img image.Image, coeffs geom.ProjectiveCoeffs, width, height int, mode Resample) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	src := clone.AsRGBA(img)
	out := image.NewRGBA(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				sx, sy := coeffs.Apply(float64(x), float64(y))
				out.SetRGBA(x, y, sample(src, sx, sy, mode))
			}
		}
	})
	return out, nil
}

// Affine applies an affine warp to img, producing an output of the given
// size. The coefficients map output pixel coordinates to source coordinates.
func Affine(img image.Image, coeffs geom.AffineCoeffs, width, height int, mode Resample) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	src := clone.AsRGBA(img)
	out := image.NewRGBA(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				sx, sy := coeffs.Apply(float64(x), float64(y))
				out.SetRGBA(x, y, sample(src, sx, sy, mode))
			}
		}
	})
	return out, nil
}
