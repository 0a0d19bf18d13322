package warp

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-augment/internal/geom"
)

// MeshCell pairs an output cell with the source quadrilateral sampled to
// fill it. The quad uses the standard corner order {top-left, top-right,
// bottom-right, bottom-left}.
type MeshCell struct {
	Box  image.Rectangle
	Quad geom.Quad
}

// Mesh is an ordered set of cells covering the output image without gaps.
type Mesh []MeshCell

// MeshWarp renders a piecewise warp: every output pixel inside a cell's Box
// samples the source at the matching position within the cell's Quad,
// interpolated bilinearly across the quad. Output size is width×height;
// cells are rendered in parallel.
func MeshWarp(img image.Image, mesh Mesh, width, height int, mode Resample) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(mesh) == 0 {
		return nil, fmt.Errorf("mesh has no cells")
	}

	src := clone.AsRGBA(img)
	out := image.NewRGBA(image.Rect(0, 0, width, height))

	parallel.Line(len(mesh), func(start, end int) {
		for i := start; i < end; i++ {
			renderCell(src, out, mesh[i], mode)
		}
	})
	return out, nil
}

// renderCell fills cell.Box in dst by sampling src across cell.Quad.
// The source position for a pixel at fractional offsets (rx, ry) within the
// box is the bilinear blend of the quad corners:
//
//	p = tl + rx·(tr−tl) + ry·(bl−tl) + rx·ry·(br−bl−tr+tl)
func renderCell(src, dst *image.RGBA, cell MeshCell, mode Resample) {
	box := cell.Box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}
	w := float64(cell.Box.Dx())
	h := float64(cell.Box.Dy())
	tl := cell.Quad[geom.TopLeft]
	tr := cell.Quad[geom.TopRight]
	br := cell.Quad[geom.BottomRight]
	bl := cell.Quad[geom.BottomLeft]

	for y := box.Min.Y; y < box.Max.Y; y++ {
		ry := float64(y-cell.Box.Min.Y) / h
		for x := box.Min.X; x < box.Max.X; x++ {
			rx := float64(x-cell.Box.Min.X) / w
			sx := tl.X + rx*(tr.X-tl.X) + ry*(bl.X-tl.X) + rx*ry*(br.X-bl.X-tr.X+tl.X)
			sy := tl.Y + rx*(tr.Y-tl.Y) + ry*(bl.Y-tl.Y) + rx*ry*(br.Y-bl.Y-tr.Y+tl.Y)
			dst.SetRGBA(x, y, sample(src, sx, sy, mode))
		}
	}
}
