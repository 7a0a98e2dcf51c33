package lda

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fisher computes the Fisher linear discriminant direction for two classes,
// w = Sw⁻¹ (μ₁ − μ₀) with Sw the pooled within-class scatter.
// Samples projected onto w separate the classes with maximum
// between-class to within-class variance ratio.
func Fisher(x0, x1 [][]float64) ([]float64, error) {
	if len(x0) < 2 || len(x1) < 2 {
		return nil, fmt.Errorf("need at least 2 samples per class, got %d and %d", len(x0), len(x1))
	}
	dim := len(x0[0])

	mu0, err := meanOf(x0, dim)
	if err != nil {
		return nil, fmt.Errorf("could not compute mean of class 0: %w", err)
	}
	mu1, err := meanOf(x1, dim)
	if err != nil {
		return nil, fmt.Errorf("could not compute mean of class 1: %w", err)
	}

	sw := mat.NewDense(dim, dim, nil)
	if err := addScatter(sw, x0, mu0); err != nil {
		return nil, fmt.Errorf("could not accumulate scatter of class 0: %w", err)
	}
	if err := addScatter(sw, x1, mu1); err != nil {
		return nil, fmt.Errorf("could not accumulate scatter of class 1: %w", err)
	}

	diff := mat.NewVecDense(dim, nil)
	for i := 0; i < dim; i++ {
		diff.SetVec(i, mu1[i]-mu0[i])
	}

	w := mat.NewVecDense(dim, nil)
	if err := w.SolveVec(sw, diff); err != nil {
		return nil, fmt.Errorf("within-class scatter is singular: %w", err)
	}

	ww := make([]float64, dim)
	for i := 0; i < dim; i++ {
		ww[i] = w.AtVec(i)
	}
	return ww, nil
}

// Project returns the scalar projection of every sample onto the direction w.
func Project(w []float64, xx [][]float64) ([]float64, error) {
	scores := make([]float64, len(xx))
	for i, x := range xx {
		if len(x) != len(w) {
			return nil, fmt.Errorf("sample %d has dimension %d instead of %d", i, len(x), len(w))
		}
		s := 0.0
		for j := range w {
			s += w[j] * x[j]
		}
		scores[i] = s
	}
	return scores, nil
}

func meanOf(xx [][]float64, dim int) ([]float64, error) {
	mu := make([]float64, dim)
	for i, x := range xx {
		if len(x) != dim {
			return nil, fmt.Errorf("sample %d has dimension %d instead of %d", i, len(x), dim)
		}
		for j := range x {
			mu[j] += x[j]
		}
	}
	for j := range mu {
		mu[j] /= float64(len(xx))
	}
	return mu, nil
}

func addScatter(sw *mat.Dense, xx [][]float64, mu []float64) error {
	dim := len(mu)
	d := mat.NewVecDense(dim, nil)
	for i, x := range xx {
		if len(x) != dim {
			return fmt.Errorf("sample %d has dimension %d instead of %d", i, len(x), dim)
		}
		for j := range x {
			d.SetVec(j, x[j]-mu[j])
		}
		var outer mat.Dense
		outer.Outer(1, d, d)
		sw.Add(sw, &outer)
	}
	return nil
}
