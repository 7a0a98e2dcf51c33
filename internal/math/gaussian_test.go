package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func factorize(t *testing.T, cov *mat.SymDense) *mat.Cholesky {
	chol := &mat.Cholesky{}
	ok := chol.Factorize(cov)
	assert.True(t, ok)
	return chol
}

func TestLogGaussian(t *testing.T) {

	type test struct {
		cov    *mat.SymDense
		mean   []float64
		x      []float64
		output float64
	}

	tests := map[string]test{
		"standard-at-mean": {
			cov:    mat.NewSymDense(1, []float64{1}),
			mean:   []float64{0},
			x:      []float64{0},
			output: -0.9189385332046727,
		},
		"standard-off-mean": {
			cov:    mat.NewSymDense(1, []float64{1}),
			mean:   []float64{0},
			x:      []float64{1},
			output: -1.4189385332046727,
		},
		"scaled-at-mean": {
			cov:    mat.NewSymDense(2, []float64{2, 0, 0, 2}),
			mean:   []float64{1, 1},
			x:      []float64{1, 1},
			output: -2.5310242469692907,
		},
		"correlated": {
			cov:    mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1}),
			mean:   []float64{1, -1},
			x:      []float64{2, 0},
			output: -2.689113531805628,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lp, err := LogGaussian(factorize(t, tt.cov), tt.mean, tt.x)
			assert.NoError(t, err)
			assert.InDelta(t, tt.output, lp, 1e-12)
		})
	}
}

func TestLogGaussian_Validation(t *testing.T) {

	chol := factorize(t, mat.NewSymDense(2, []float64{1, 0, 0, 1}))

	_, err := LogGaussian(chol, []float64{0, 0}, []float64{0})
	assert.Error(t, err)

	_, err = LogGaussian(chol, []float64{0}, []float64{0})
	assert.Error(t, err)
}
