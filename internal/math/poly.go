package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit fits the given series of x and y into a polynomial function of the given degree.
// The output is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + ...
// It is used to overlay a trend on the empirical error curves.
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("got %d x values for %d y values", len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("need more than %d points for degree %d", degree, degree)
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("could not solve least squares system: %w", err)
	}

	v := c.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, nil
}

// Eval evaluates the polynomial with the given coefficients at x.
func Eval(cc []float64, x float64) float64 {
	y := 0.0
	p := 1.0
	for _, c := range cc {
		y += c * p
		p *= x
	}
	return y
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
