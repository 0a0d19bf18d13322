package warp

import (
	"image"
	"image/color"
	"math"
)

// Resample selects the sampling kernel used when a warp reads a non-integer
// source position. The zero value is Bicubic, the default used by all
// transforms in this module.
type Resample int

const (
	// Bicubic samples a 4×4 neighbourhood with a Catmull-Rom kernel.
	Bicubic Resample = iota
	// Bilinear interpolates the 2×2 neighbourhood.
	Bilinear
	// Nearest picks the closest source pixel.
	Nearest
)

// String returns the lowercase name of the resampling mode.
func (r Resample) String() string {
	switch r {
	case Bilinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	default:
		return "bicubic"
	}
}

// sample reads src at the real-valued position (x, y) using the given mode.
// Positions outside the source bounds yield a fully transparent pixel.
// src bounds must start at (0,0), which clone.AsRGBA guarantees.
func sample(src *image.RGBA, x, y float64, mode Resample) color.RGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	if x < 0 || y < 0 || x > float64(w-1) || y > float64(h-1) {
		return color.RGBA{}
	}

	switch mode {
	case Nearest:
		return src.RGBAAt(int(x+0.5), int(y+0.5))
	case Bilinear:
		return sampleBilinear(src, x, y, w, h)
	default:
		return sampleBicubic(src, x, y, w, h)
	}
}

func sampleBilinear(src *image.RGBA, x, y float64, w, h int) color.RGBA {
	x0 := int(x)
	y0 := int(y)
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := src.RGBAAt(x0, y0)
	c10 := src.RGBAAt(x1, y0)
	c01 := src.RGBAAt(x0, y1)
	c11 := src.RGBAAt(x1, y1)

	lerp2 := func(a, b, c, d uint8) uint8 {
		top := float64(a) + (float64(b)-float64(a))*fx
		bot := float64(c) + (float64(d)-float64(c))*fx
		return uint8(top + (bot-top)*fy + 0.5)
	}
	return color.RGBA{
		R: lerp2(c00.R, c10.R, c01.R, c11.R),
		G: lerp2(c00.G, c10.G, c01.G, c11.G),
		B: lerp2(c00.B, c10.B, c01.B, c11.B),
		A: lerp2(c00.A, c10.A, c01.A, c11.A),
	}
}

// cubicWeight is the Catmull-Rom kernel (a = -0.5). It is exact at integer
// offsets: weight 1 at 0 and weight 0 at ±1 and beyond.
func cubicWeight(t float64) float64 {
	const a = -0.5
	t = math.Abs(t)
	switch {
	case t <= 1:
		return (a+2)*t*t*t - (a+3)*t*t + 1
	case t < 2:
		return a*t*t*t - 5*a*t*t + 8*a*t - 4*a
	default:
		return 0
	}
}

func sampleBicubic(src *image.RGBA, x, y float64, w, h int) color.RGBA {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	var r, g, b, a float64
	for j := -1; j <= 2; j++ {
		yj := y0 + j
		wy := cubicWeight(y - float64(yj))
		if wy == 0 {
			continue
		}
		cy := max(0, min(yj, h-1))
		for i := -1; i <= 2; i++ {
			xi := x0 + i
			wx := cubicWeight(x - float64(xi))
			if wx == 0 {
				continue
			}
			cx := max(0, min(xi, w-1))
			c := src.RGBAAt(cx, cy)
			wgt := wx * wy
			r += wgt * float64(c.R)
			g += wgt * float64(c.G)
			b += wgt * float64(c.B)
			a += wgt * float64(c.A)
		}
	}
	return color.RGBA{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: clampChannel(a),
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
