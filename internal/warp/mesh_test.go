package warp

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-augment/internal/geom"
)

// gridMesh builds an unperturbed mesh tiling a w×h image with uniform cells.
func gridMesh(w, h, cols, rows int) Mesh {
	cellW := w / cols
	cellH := h / rows
	var mesh Mesh
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0, y0 := c*cellW, r*cellH
			x1, y1 := x0+cellW, y0+cellH
			if c == cols-1 {
				x1 = w
			}
			if r == rows-1 {
				y1 = h
			}
			mesh = append(mesh, MeshCell{
				Box: image.Rect(x0, y0, x1, y1),
				Quad: geom.Quad{
					{X: float64(x0), Y: float64(y0)},
					{X: float64(x1), Y: float64(y0)},
					{X: float64(x1), Y: float64(y1)},
					{X: float64(x0), Y: float64(y1)},
				},
			})
		}
	}
	return mesh
}

func TestMeshWarp_IdentityMesh(t *testing.T) {
	img := createPatternImage(40, 40)
	out, err := MeshWarp(img, gridMesh(40, 40, 4, 4), 40, 40, Nearest)
	if err != nil {
		t.Fatalf("MeshWarp failed: %v", err)
	}
	samePixels(t, out, img)
}

func TestMeshWarp_CoversWholeOutput(t *testing.T) {
	img := createPatternImage(50, 30)
	out, err := MeshWarp(img, gridMesh(50, 30, 3, 2), 50, 30, Nearest)
	if err != nil {
		t.Fatalf("MeshWarp failed: %v", err)
	}
	// No output pixel may be left unwritten: the pattern is fully opaque, so
	// any transparent pixel would mean a gap between cells.
	for y := 0; y < 30; y++ {
		for x := 0; x < 50; x++ {
			if out.RGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d,%d) not covered by any mesh cell", x, y)
			}
		}
	}
}

func TestMeshWarp_Errors(t *testing.T) {
	img := createPatternImage(10, 10)
	mesh := gridMesh(10, 10, 2, 2)

	if _, err := MeshWarp(img, mesh, 0, 10, Nearest); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := MeshWarp(img, nil, 10, 10, Nearest); err == nil {
		t.Error("empty mesh should fail")
	}
}

func TestDrawMeshOverlay(t *testing.T) {
	img := createPatternImage(40, 40)
	mesh := gridMesh(40, 40, 2, 2)

	out, err := DrawMeshOverlay(img, mesh, "#FFFF00")
	if err != nil {
		t.Fatalf("DrawMeshOverlay failed: %v", err)
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", out.Bounds(), img.Bounds())
	}

	// Cell edges run along x=20 and y=20; those pixels carry the line color.
	want := color.RGBA{255, 255, 0, 255}
	if got := out.RGBAAt(20, 5); got != want {
		t.Errorf("pixel on cell edge: got %v, want %v", got, want)
	}

	// The input stays untouched.
	if got := img.RGBAAt(20, 5); got == want {
		t.Error("input image was mutated")
	}
}

func TestDrawMeshOverlay_BadColorFallsBack(t *testing.T) {
	img := createPatternImage(20, 20)
	out, err := DrawMeshOverlay(img, gridMesh(20, 20, 2, 2), "not-a-color")
	if err != nil {
		t.Fatalf("DrawMeshOverlay failed: %v", err)
	}
	if got := out.RGBAAt(10, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("fallback color: got %v, want red", got)
	}
}

func TestDrawMeshOverlay_EmptyMesh(t *testing.T) {
	img := createPatternImage(10, 10)
	if _, err := DrawMeshOverlay(img, nil, "#FF0000"); err == nil {
		t.Error("empty mesh should fail")
	}
}
