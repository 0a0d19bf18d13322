package warp

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-augment/internal/geom"
)

// DrawMeshOverlay returns a copy of img with every mesh cell's quadrilateral
// outlined, for visual inspection of generated distortion meshes. The line
// color is given as a hex string like "#FF0000"; an unparsable color falls
// back to red.
func DrawMeshOverlay(img image.Image, mesh Mesh, hexColor string) (*image.RGBA, error) {
	if len(mesh) == 0 {
		return nil, fmt.Errorf("mesh has no cells")
	}

	lineColor := color.RGBA{R: 255, A: 255}
	if c, err := colorful.Hex(hexColor); err == nil {
		r, g, b := c.RGB255()
		lineColor = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	out := clone.AsRGBA(img)
	for _, cell := range mesh {
		q := cell.Quad
		drawSegment(out, q[geom.TopLeft], q[geom.TopRight], lineColor)
		drawSegment(out, q[geom.TopRight], q[geom.BottomRight], lineColor)
		drawSegment(out, q[geom.BottomRight], q[geom.BottomLeft], lineColor)
		drawSegment(out, q[geom.BottomLeft], q[geom.TopLeft], lineColor)
	}
	return out, nil
}

// drawSegment draws a straight line from a to b by stepping one pixel at a
// time along the longer axis. Points outside the image are skipped.
func drawSegment(img *image.RGBA, a, b geom.Point, c color.RGBA) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps == 0 {
		steps = 1
	}
	bounds := img.Bounds()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(a.X + t*(b.X-a.X) + 0.5)
		y := int(a.Y + t*(b.Y-a.Y) + 0.5)
		if image.Pt(x, y).In(bounds) {
			img.SetRGBA(x, y, c)
		}
	}
}
