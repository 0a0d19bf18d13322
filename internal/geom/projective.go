package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularTransform is returned when a coefficient solve is attempted on
// degenerate or near-collinear point correspondences.
var ErrSingularTransform = errors.New("singular transform")

// maxConditionNumber is the cutoff above which the normal-equations system is
// considered too ill-conditioned to produce trustworthy coefficients.
const maxConditionNumber = 1e13

// ProjectiveCoeffs holds the 8 coefficients (a..h) of a projective mapping
//
//	x' = (a·x + b·y + c) / (g·x + h·y + 1)
//	y' = (d·x + e·y + f) / (g·x + h·y + 1)
//
// mapping destination pixel coordinates to source coordinates.
type ProjectiveCoeffs [8]float64

// Apply maps the point (x, y) through the projective transform.
func (c ProjectiveCoeffs) Apply(x, y float64) (float64, float64) {
	denom := c[6]*x + c[7]*y + 1
	if denom == 0 {
		return math.Inf(1), math.Inf(1)
	}
	sx := (c[0]*x + c[1]*y + c[2]) / denom
	sy := (c[3]*x + c[4]*y + c[5]) / denom
	return sx, sy
}

// AffineCoeffs holds the 6 coefficients (a..f) of an affine mapping
//
//	x' = a·x + b·y + c
//	y' = d·x + e·y + f
//
// mapping destination pixel coordinates to source coordinates.
type AffineCoeffs [6]float64

// Apply maps the point (x, y) through the affine transform.
func (c AffineCoeffs) Apply(x, y float64) (float64, float64) {
	return c[0]*x + c[1]*y + c[2], c[3]*x + c[4]*y + c[5]
}

// SolveProjective solves for the projective coefficients mapping the
// destination quad back onto the source quad, by correspondence of corner
// index. Each of the four point pairs contributes two rows of the linearized
// system A·k = b; the solve goes through the normal equations (AᵀA)·k = Aᵀb.
//
// Near-degenerate correspondences (three or more near-collinear points)
// make the system ill-conditioned; those surface ErrSingularTransform
// rather than unreliable coefficients.
func SolveProjective(src, dst Quad) (ProjectiveCoeffs, error) {
	var coeffs ProjectiveCoeffs

	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		s, d := src[i], dst[i]
		r := 2 * i
		a.SetRow(r, []float64{d.X, d.Y, 1, 0, 0, 0, -s.X * d.X, -s.X * d.Y})
		a.SetRow(r+1, []float64{0, 0, 0, d.X, d.Y, 1, -s.Y * d.X, -s.Y * d.Y})
		b.SetVec(r, s.X)
		b.SetVec(r+1, s.Y)
	}

	ata := mat.NewDense(8, 8, nil)
	ata.Mul(a.T(), a)
	atb := mat.NewVecDense(8, nil)
	atb.MulVec(a.T(), b)

	if cond := mat.Cond(ata, 1); math.IsInf(cond, 1) || cond > maxConditionNumber {
		return coeffs, fmt.Errorf("%w: condition number %.3g exceeds %.0g",
			ErrSingularTransform, cond, float64(maxConditionNumber))
	}

	var k mat.VecDense
	if err := k.SolveVec(ata, atb); err != nil {
		return coeffs, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}

	for i := range coeffs {
		coeffs[i] = k.AtVec(i)
	}
	return coeffs, nil
}
