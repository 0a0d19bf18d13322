package warp

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// RotateExpand rotates img counter-clockwise by angle degrees, expanding the
// canvas so no content is clipped. Empty corners introduced by the rotation
// are filled with bg.
func RotateExpand(img image.Image, angle float64, bg color.Color) *image.NRGBA {
	return imaging.Rotate(img, angle, bg)
}

// Crop extracts the rectangle rect from img. The rectangle must be non-empty
// and lie within the image bounds.
func Crop(img image.Image, rect image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, fmt.Errorf("%w: crop window %v is empty", ErrInvalidDimensions, rect)
	}
	if !rect.In(bounds) {
		return nil, fmt.Errorf("crop window %v outside image bounds %v", rect, bounds)
	}
	return imaging.Crop(img, rect), nil
}

// ResizeTo resamples img to exactly width×height.
func ResizeTo(img image.Image, width, height int, mode Resample) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return imaging.Resize(img, width, height, resizeFilter(mode)), nil
}

func resizeFilter(mode Resample) imaging.ResampleFilter {
	switch mode {
	case Nearest:
		return imaging.NearestNeighbor
	case Bilinear:
		return imaging.Linear
	default:
		return imaging.CatmullRom
	}
}
