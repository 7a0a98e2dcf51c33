package mixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func model(t *testing.T, weights ...float64) *Model {
	components := make([]Component, len(weights))
	for k, w := range weights {
		components[k] = Component{
			Weight: w,
			Mean:   []float64{float64(4 * k), 0},
			Cov:    mat.NewSymDense(2, []float64{1, 0, 0, 1}),
		}
	}
	m, err := New(components...)
	assert.NoError(t, err)
	return m
}

func TestNew_Validation(t *testing.T) {

	type test struct {
		components []Component
		err        bool
	}

	tests := map[string]test{
		"valid": {
			components: []Component{
				{Weight: 0.5, Mean: []float64{0}, Cov: mat.NewSymDense(1, []float64{1})},
				{Weight: 0.5, Mean: []float64{1}, Cov: mat.NewSymDense(1, []float64{1})},
			},
		},
		"empty": {
			err: true,
		},
		"weights-dont-sum": {
			components: []Component{
				{Weight: 0.5, Mean: []float64{0}, Cov: mat.NewSymDense(1, []float64{1})},
				{Weight: 0.4, Mean: []float64{1}, Cov: mat.NewSymDense(1, []float64{1})},
			},
			err: true,
		},
		"negative-weight": {
			components: []Component{
				{Weight: 1.5, Mean: []float64{0}, Cov: mat.NewSymDense(1, []float64{1})},
				{Weight: -0.5, Mean: []float64{1}, Cov: mat.NewSymDense(1, []float64{1})},
			},
			err: true,
		},
		"dimension-mismatch": {
			components: []Component{
				{Weight: 0.5, Mean: []float64{0}, Cov: mat.NewSymDense(1, []float64{1})},
				{Weight: 0.5, Mean: []float64{1, 1}, Cov: mat.NewSymDense(2, []float64{1, 0, 0, 1})},
			},
			err: true,
		},
		"not-positive-definite": {
			components: []Component{
				{Weight: 0.5, Mean: []float64{0, 0}, Cov: mat.NewSymDense(2, []float64{1, 1, 1, 1})},
				{Weight: 0.5, Mean: []float64{1, 1}, Cov: mat.NewSymDense(2, []float64{1, 0, 0, 1})},
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.components...)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestModel_SampleCounts(t *testing.T) {

	m := model(t, 0.2, 0.3, 0.5)

	n := 1000
	samples, labels, err := m.Sample(n, rand.NewSource(11))
	assert.NoError(t, err)
	assert.Equal(t, n, len(samples))
	assert.Equal(t, n, len(labels))

	counts := m.Counts(labels)
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, n, total)

	// the labels must follow the uniform draws through the threshold intervals,
	// the uniforms are the first n values the source produces
	uu := rand.New(rand.NewSource(11))
	expected := make([]int, 3)
	thresholds := []float64{0, 0.2, 0.5, 1}
	for i := 0; i < n; i++ {
		u := uu.Float64()
		for k := 0; k < 3; k++ {
			if u >= thresholds[k] && u < thresholds[k+1] {
				expected[k]++
			}
		}
	}
	assert.Equal(t, expected, counts)

	// and stay roughly proportional to the weights
	assert.InDelta(t, 0.2, float64(counts[0])/float64(n), 0.05)
	assert.InDelta(t, 0.3, float64(counts[1])/float64(n), 0.05)
	assert.InDelta(t, 0.5, float64(counts[2])/float64(n), 0.05)
}

func TestModel_SampleDeterminism(t *testing.T) {

	m := model(t, 0.4, 0.6)

	s1, l1, err := m.Sample(100, rand.NewSource(3))
	assert.NoError(t, err)
	s2, l2, err := m.Sample(100, rand.NewSource(3))
	assert.NoError(t, err)

	assert.Equal(t, l1, l2)
	assert.Equal(t, s1, s2)
}

func TestModel_SampleEdgeCases(t *testing.T) {

	m := model(t, 1.0, 0.0)

	// a zero-weight component draws nothing
	samples, labels, err := m.Sample(50, rand.NewSource(1))
	assert.NoError(t, err)
	assert.Equal(t, 50, len(samples))
	for _, l := range labels {
		assert.Equal(t, 0, l)
	}

	// an empty draw is not an error
	samples, labels, err = m.Sample(0, rand.NewSource(1))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(samples))
	assert.Equal(t, 0, len(labels))

	// a negative count is
	_, _, err = m.Sample(-1, rand.NewSource(1))
	assert.Error(t, err)
}
