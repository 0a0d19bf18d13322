package geom

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSolveProjective_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  Quad
		dst  Quad
	}{
		{
			name: "identity",
			src:  RectQuad(100, 80),
			dst:  RectQuad(100, 80),
		},
		{
			name: "single corner pulled",
			src:  RectQuad(100, 80),
			dst: Quad{
				{X: -15, Y: 0},
				{X: 100, Y: 0},
				{X: 100, Y: 80},
				{X: 0, Y: 80},
			},
		},
		{
			name: "tilt about vertical axis",
			src:  RectQuad(200, 100),
			dst: Quad{
				{X: 0, Y: -30},
				{X: 200, Y: 0},
				{X: 200, Y: 100},
				{X: 0, Y: 130},
			},
		},
		{
			name: "generic quad",
			src:  RectQuad(64, 64),
			dst: Quad{
				{X: 5, Y: -3},
				{X: 70, Y: 4},
				{X: 61, Y: 70},
				{X: -6, Y: 58},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := SolveProjective(tt.src, tt.dst)
			if err != nil {
				t.Fatalf("SolveProjective failed: %v", err)
			}
			for i := 0; i < 4; i++ {
				gotX, gotY := coeffs.Apply(tt.dst[i].X, tt.dst[i].Y)
				if !almostEqual(gotX, tt.src[i].X) || !almostEqual(gotY, tt.src[i].Y) {
					t.Errorf("corner %d: maps to (%g, %g), want (%g, %g)",
						i, gotX, gotY, tt.src[i].X, tt.src[i].Y)
				}
			}
		})
	}
}

func TestSolveProjective_Identity(t *testing.T) {
	q := RectQuad(50, 50)
	coeffs, err := SolveProjective(q, q)
	if err != nil {
		t.Fatalf("SolveProjective failed: %v", err)
	}

	want := ProjectiveCoeffs{1, 0, 0, 0, 1, 0, 0, 0}
	for i := range coeffs {
		if !almostEqual(coeffs[i], want[i]) {
			t.Errorf("coefficient %d: got %g, want %g", i, coeffs[i], want[i])
		}
	}
}

func TestSolveProjective_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		dst  Quad
	}{
		{
			name: "all points coincide",
			dst:  Quad{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}},
		},
		{
			name: "collinear points",
			dst:  Quad{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		},
		{
			name: "three collinear points",
			dst:  Quad{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10}},
		},
	}

	src := RectQuad(100, 100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveProjective(src, tt.dst)
			if !errors.Is(err, ErrSingularTransform) {
				t.Errorf("got error %v, want ErrSingularTransform", err)
			}
		})
	}
}

func TestAffineCoeffs_Apply(t *testing.T) {
	// Pure translation by (3, -2).
	c := AffineCoeffs{1, 0, 3, 0, 1, -2}
	x, y := c.Apply(10, 10)
	if x != 13 || y != 8 {
		t.Errorf("got (%g, %g), want (13, 8)", x, y)
	}
}

func TestProjectiveCoeffs_ZeroDenominator(t *testing.T) {
	// g, h chosen so the denominator vanishes at (1, 1).
	c := ProjectiveCoeffs{1, 0, 0, 0, 1, 0, -0.5, -0.5}
	x, y := c.Apply(1, 1)
	if !math.IsInf(x, 1) || !math.IsInf(y, 1) {
		t.Errorf("got (%g, %g), want +Inf", x, y)
	}
}

func TestRectQuad(t *testing.T) {
	q := RectQuad(10, 20)
	want := Quad{{0, 0}, {10, 0}, {10, 20}, {0, 20}}
	if q != want {
		t.Errorf("got %v, want %v", q, want)
	}
}
