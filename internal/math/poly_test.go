package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit_RecoversPolynomial(t *testing.T) {

	// y = 1 + 2x + 3x^2 sampled exactly
	xx := []float64{0, 1, 2, 3, 4}
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = 1 + 2*x + 3*x*x
	}

	cc, err := Fit(xx, yy, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(cc))
	assert.InDelta(t, 1, cc[0], 1e-6)
	assert.InDelta(t, 2, cc[1], 1e-6)
	assert.InDelta(t, 3, cc[2], 1e-6)

	for i, x := range xx {
		assert.InDelta(t, yy[i], Eval(cc, x), 1e-6)
	}
}

func TestFit_Validation(t *testing.T) {

	_, err := Fit([]float64{1, 2}, []float64{1}, 1)
	assert.Error(t, err)

	_, err = Fit([]float64{1, 2}, []float64{1, 2}, 2)
	assert.Error(t, err)
}
