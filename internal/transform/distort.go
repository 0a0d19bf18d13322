package transform

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/ironsheep/image-augment/internal/geom"
	"github.com/ironsheep/image-augment/internal/warp"
)

// Distort applies a localized elastic distortion: the image is tiled into a
// grid of cells and every interior grid vertex is nudged by a random
// displacement of at most Magnitude pixels per axis. Vertices on the outer
// boundary stay fixed, so the image border is preserved.
type Distort struct {
	// GridWidth and GridHeight are the number of cells per axis.
	GridWidth, GridHeight int

	// Magnitude is the maximum displacement in pixels of an interior vertex,
	// per axis.
	Magnitude int

	Resample warp.Resample
}

// Apply distorts the image and returns a same-size result.
func (d Distort) Apply(img image.Image, rng *rand.Rand) (image.Image, error) {
	w, h, err := inputSize(img)
	if err != nil {
		return nil, err
	}
	mesh, err := GenerateMesh(w, h, d.GridWidth, d.GridHeight, d.Magnitude, rng)
	if err != nil {
		return nil, err
	}
	return warp.MeshWarp(img, mesh, w, h, d.Resample)
}

// GenerateMesh tiles a w×h image into gridW×gridH cells and perturbs every
// interior vertex by a displacement drawn uniformly from
// [-magnitude, magnitude] per axis. A vertex shared by up to four cells
// receives the identical displacement in each, so the warp cannot tear at
// cell boundaries. The last row and column absorb the remainder of the
// integer division, so the cells tile the image exactly.
func GenerateMesh(w, h, gridW, gridH, magnitude int, rng *rand.Rand) (warp.Mesh, error) {
	if gridW <= 0 || gridH <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidParameter, gridW, gridH)
	}
	if magnitude < 0 {
		return nil, fmt.Errorf("%w: magnitude %d is negative", ErrInvalidParameter, magnitude)
	}
	cellW := w / gridW
	cellH := h / gridH
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d too fine for %dx%d image",
			ErrInvalidParameter, gridW, gridH, w, h)
	}

	mesh := make(warp.Mesh, 0, gridW*gridH)
	for row := 0; row < gridH; row++ {
		y0 := row * cellH
		y1 := y0 + cellH
		if row == gridH-1 {
			y1 = h
		}
		for col := 0; col < gridW; col++ {
			x0 := col * cellW
			x1 := x0 + cellW
			if col == gridW-1 {
				x1 = w
			}
			box := image.Rect(x0, y0, x1, y1)
			mesh = append(mesh, warp.MeshCell{
				Box: box,
				Quad: geom.Quad{
					{X: float64(x0), Y: float64(y0)},
					{X: float64(x1), Y: float64(y0)},
					{X: float64(x1), Y: float64(y1)},
					{X: float64(x0), Y: float64(y1)},
				},
			})
		}
	}

	// Interior vertices: the bottom-right corner of every cell not in the
	// last row or column. Each is shared with the three neighbours to the
	// right, below, and diagonally below-right.
	for row := 0; row < gridH-1; row++ {
		for col := 0; col < gridW-1; col++ {
			dx := float64(displacement(magnitude, rng))
			dy := float64(displacement(magnitude, rng))

			i := row*gridW + col
			shiftCorner(&mesh[i], geom.BottomRight, dx, dy)
			shiftCorner(&mesh[i+1], geom.BottomLeft, dx, dy)
			shiftCorner(&mesh[i+gridW], geom.TopRight, dx, dy)
			shiftCorner(&mesh[i+gridW+1], geom.TopLeft, dx, dy)
		}
	}
	return mesh, nil
}

func shiftCorner(cell *warp.MeshCell, corner int, dx, dy float64) {
	cell.Quad[corner].X += dx
	cell.Quad[corner].Y += dy
}

// displacement draws an integer uniformly from [-magnitude, magnitude].
func displacement(magnitude int, rng *rand.Rand) int {
	if magnitude == 0 {
		return 0
	}
	return rng.Intn(2*magnitude+1) - magnitude
}
