package geom

// Point represents a 2D point in image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Corner indices into a Quad. The order is fixed and must be preserved
// across corresponding source/destination quads.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quad is an ordered quadrilateral: top-left, top-right, bottom-right,
// bottom-left.
type Quad [4]Point

// RectQuad returns the axis-aligned quadrilateral covering a w×h image,
// with corners at (0,0), (w,0), (w,h) and (0,h).
func RectQuad(w, h float64) Quad {
	return Quad{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}
