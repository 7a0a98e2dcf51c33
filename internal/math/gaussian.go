package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// logTwoPi = log(2 * pi)
const logTwoPi = 1.8378770664093453

// LogGaussian evaluates the multivariate normal log density at x,
// given the mean and the Cholesky factorisation of the covariance.
// The quadratic form is solved against the factorisation,
// so the evaluation stays finite for far-out samples.
func LogGaussian(chol *mat.Cholesky, mean, x []float64) (float64, error) {
	d := len(mean)
	if len(x) != d {
		return 0, fmt.Errorf("sample has dimension %d instead of %d", len(x), d)
	}
	if chol.Symmetric() != d {
		return 0, fmt.Errorf("covariance has dimension %d instead of %d", chol.Symmetric(), d)
	}
	diff := mat.NewVecDense(d, nil)
	for i := range mean {
		diff.SetVec(i, x[i]-mean[i])
	}
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, diff); err != nil {
		return 0, fmt.Errorf("could not solve against the factorisation: %w", err)
	}
	quad := mat.Dot(diff, &sol)
	return -0.5 * (float64(d)*logTwoPi + chol.LogDet() + quad), nil
}
