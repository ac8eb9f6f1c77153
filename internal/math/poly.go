package math

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the interpolation system has no unique solution.
var ErrSingular = errors.New("singular system")

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("inconsistent series length [ %d | %d ]", len(x), len(y))
	}
	if len(x) < degree+1 {
		return nil, fmt.Errorf("not enough points (%d out of %d) for degree %d", len(x), degree+1, degree)
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(c, false, b)

	return column(c), err
}

// Interpolate returns the coefficients of the unique polynomial of degree len(x)-1
// passing through all the given points, in the same order as Fit.
// The square vandermonde system is solved with a pivoted LU decomposition.
// If the system is singular all coefficients are NaN and ErrSingular is returned.
// If the system is ill-conditioned the solution is returned together with a mat.Condition error.
func Interpolate(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("inconsistent series length [ %d | %d ]", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no points to interpolate")
	}
	degree := len(x) - 1

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	lu := new(mat.LU)
	lu.Factorize(a)
	if lu.Det() == 0 {
		return undefined(degree + 1), fmt.Errorf("could not interpolate %d points: %w", len(x), ErrSingular)
	}

	err := lu.SolveTo(c, false, b)
	if singular(err) {
		return undefined(degree + 1), fmt.Errorf("could not interpolate %d points (%v): %w", len(x), err, ErrSingular)
	}

	cc := column(c)
	if !Finite(cc...) {
		return undefined(degree + 1), fmt.Errorf("could not interpolate %d points (%v): %w", len(x), err, ErrSingular)
	}
	return cc, err
}

// Horner evaluates the polynomial with the given coefficients at x.
func Horner(cc []float64, x float64) float64 {
	v := 0.0
	for i := len(cc) - 1; i >= 0; i-- {
		v = v*x + cc[i]
	}
	return v
}

// Finite checks if all given values are neither NaN nor Inf.
func Finite(ff ...float64) bool {
	for _, f := range ff {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// singular checks if the solver error reports a system without a unique solution.
// An infinite condition number leaves the solution unwritten.
func singular(err error) bool {
	if errors.Is(err, mat.ErrSingular) {
		return true
	}
	var cond mat.Condition
	return errors.As(err, &cond) && math.IsInf(float64(cond), 1)
}

func undefined(n int) []float64 {
	cc := make([]float64, n)
	for i := range cc {
		cc[i] = math.NaN()
	}
	return cc
}

func column(c *mat.Dense) []float64 {
	v := c.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
