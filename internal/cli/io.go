package cli

import (
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// openImage loads and decodes the image at path. PNG, JPEG, GIF, TIFF and
// BMP are supported.
func openImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// saveImage encodes img to path; the format is chosen by file extension.
func saveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// outputPath returns the explicit output path, or derives one from the input
// name and the operation, e.g. "cat.png" + "skew" -> "cat_skew.png".
func outputPath(explicit, input, op string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_" + op + ext
}

// newRNG builds the random source for one invocation. A zero seed falls back
// to the clock, so repeated unseeded runs differ.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
