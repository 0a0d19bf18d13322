package transform

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestSkewDistance_InverseMagnitude(t *testing.T) {
	tests := []struct {
		w, h      int
		magnitude float64
		want      float64
	}{
		{100, 50, 2, 50},
		{100, 50, 4, 25},
		{50, 200, 8, 25},
		{80, 80, 10, 8},
	}
	for _, tt := range tests {
		got := skewDistance(tt.w, tt.h, tt.magnitude, newTestRNG())
		if got != tt.want {
			t.Errorf("skewDistance(%d, %d, %g) = %g, want %g",
				tt.w, tt.h, tt.magnitude, got, tt.want)
		}
	}
}

func TestSkewDistance_MonotonicInMagnitude(t *testing.T) {
	prev := skewDistance(200, 100, 1, newTestRNG())
	for m := 2.0; m <= 10; m++ {
		cur := skewDistance(200, 100, m, newTestRNG())
		if cur >= prev {
			t.Fatalf("distance %g at magnitude %g not below %g at %g", cur, m, prev, m-1)
		}
		prev = cur
	}
}

func TestSkewDistance_RandomDraw(t *testing.T) {
	rng := newTestRNG()
	for i := 0; i < 100; i++ {
		d := skewDistance(100, 60, 0, rng)
		if d < 1 || d > 100 {
			t.Fatalf("random skew distance %g outside [1, 100]", d)
		}
	}
}

func TestSkewDirectionTables(t *testing.T) {
	// Every tilt direction displaces exactly two corners; every corner
	// direction displaces exactly one, by a single-axis unit vector.
	for i, pair := range tiltShifts {
		if pair[0].corner == pair[1].corner {
			t.Errorf("tilt %d displaces the same corner twice", i)
		}
		for _, cs := range pair {
			if !isUnitAxisShift(cs) {
				t.Errorf("tilt %d: shift %+v is not a unit axis displacement", i, cs)
			}
		}
	}
	for i, cs := range cornerShifts {
		if !isUnitAxisShift(cs) {
			t.Errorf("corner %d: shift %+v is not a unit axis displacement", i, cs)
		}
		if cs.corner != i/2 {
			t.Errorf("corner %d: displaces corner %d, want %d", i, cs.corner, i/2)
		}
	}
}

func isUnitAxisShift(cs cornerShift) bool {
	dx, dy := cs.dx, cs.dy
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

func TestSkew_Apply(t *testing.T) {
	img := createTestImage(60, 40, color.RGBA{200, 100, 50, 255})

	modes := []SkewMode{SkewTilt, SkewTiltLeftRight, SkewTiltTopBottom, SkewCorner}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			out, err := Skew{Mode: mode, Magnitude: 4}.Apply(img, newTestRNG())
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			b := out.Bounds()
			if b.Dx() != 60 || b.Dy() != 40 {
				t.Errorf("dimensions: got %dx%d, want 60x40", b.Dx(), b.Dy())
			}
		})
	}
}

func TestSkew_Deterministic(t *testing.T) {
	img := createTestImage(32, 32, color.RGBA{10, 20, 30, 255})
	s := Skew{Mode: SkewCorner, Magnitude: 0}

	a, err := s.Apply(img, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	b, err := s.Apply(img, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	ar := a.(*image.RGBA)
	br := b.(*image.RGBA)
	for i := range ar.Pix {
		if ar.Pix[i] != br.Pix[i] {
			t.Fatal("same seed produced different images")
		}
	}
}

func TestSkew_InvalidParameters(t *testing.T) {
	img := createTestImage(10, 10, color.White)

	if _, err := (Skew{Mode: SkewMode(99)}).Apply(img, newTestRNG()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown mode: got %v, want ErrInvalidParameter", err)
	}
	if _, err := (Skew{Magnitude: -1}).Apply(img, newTestRNG()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative magnitude: got %v, want ErrInvalidParameter", err)
	}
}
