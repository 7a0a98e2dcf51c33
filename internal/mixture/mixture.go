package mixture

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// WeightTolerance is the allowed deviation of the component weights from 1.
const WeightTolerance = 1e-9

// Component is a single Gaussian of the mixture,
// with its prior weight within the model.
type Component struct {
	Weight float64
	Mean   []float64
	Cov    *mat.SymDense
}

// Model is an ordered collection of weighted Gaussian components.
// Labels produced by Sample refer to the component position, starting at 0.
type Model struct {
	dim        int
	components []Component
}

// New creates a mixture model from the given components.
// It fails fast if the weights dont sum up to 1,
// if the dimensions dont agree, or if any covariance is not positive-definite.
func New(components ...Component) (*Model, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("no components given")
	}
	dim := len(components[0].Mean)
	weights := make([]float64, len(components))
	for k, c := range components {
		if c.Weight < 0 {
			return nil, fmt.Errorf("negative weight %f for component %d", c.Weight, k)
		}
		weights[k] = c.Weight
		if len(c.Mean) != dim {
			return nil, fmt.Errorf("component %d has dimension %d instead of %d", k, len(c.Mean), dim)
		}
		if r, cc := c.Cov.Dims(); r != dim || cc != dim {
			return nil, fmt.Errorf("component %d has covariance %dx%d instead of %dx%d", k, r, cc, dim, dim)
		}
		var chol mat.Cholesky
		if ok := chol.Factorize(c.Cov); !ok {
			return nil, fmt.Errorf("covariance of component %d is not positive-definite", k)
		}
	}
	if sum := floats.Sum(weights); sum-1.0 > WeightTolerance || sum-1.0 < -WeightTolerance {
		return nil, fmt.Errorf("weights sum up to %f instead of 1", sum)
	}
	return &Model{
		dim:        dim,
		components: components,
	}, nil
}

// Dim returns the dimension of the sample space.
func (m *Model) Dim() int {
	return m.dim
}

// Size returns the number of components.
func (m *Model) Size() int {
	return len(m.components)
}

// Components returns the ordered components of the model.
func (m *Model) Components() []Component {
	return m.components
}

// Sample draws n samples from the mixture using the given random source.
// It returns the samples together with the index of the generating component.
// The assignment happens through a single batch of n uniform draws,
// partitioned by the cumulative weight thresholds.
// The intervals are half-open, so a draw is eligible for exactly one component.
func (m *Model) Sample(n int, src rand.Source) ([][]float64, []int, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("negative sample count %d", n)
	}

	rnd := rand.New(src)
	uu := make([]float64, n)
	for i := range uu {
		uu[i] = rnd.Float64()
	}

	// cumulative thresholds, starting at 0 and ending at 1
	thresholds := make([]float64, len(m.components)+1)
	for k, c := range m.components {
		thresholds[k+1] = thresholds[k] + c.Weight
	}
	thresholds[len(m.components)] = 1.0

	samples := make([][]float64, n)
	labels := make([]int, n)

	for k, c := range m.components {
		lo := thresholds[k]
		hi := thresholds[k+1]
		// positions of the uniform draws falling into [lo,hi)
		idx := make([]int, 0)
		for i, u := range uu {
			if u >= lo && u < hi {
				idx = append(idx, i)
			}
		}
		if len(idx) == 0 {
			continue
		}
		normal, ok := distmv.NewNormal(c.Mean, c.Cov, src)
		if !ok {
			return nil, nil, fmt.Errorf("covariance of component %d is not positive-definite", k)
		}
		for _, i := range idx {
			samples[i] = normal.Rand(nil)
			labels[i] = k
		}
	}

	return samples, labels, nil
}

// Counts returns the number of labels per component for the given label set.
func (m *Model) Counts(labels []int) []int {
	counts := make([]int, len(m.components))
	for _, l := range labels {
		if l >= 0 && l < len(counts) {
			counts[l]++
		}
	}
	return counts
}
