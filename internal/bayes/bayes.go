package bayes

import (
	"fmt"
	"math"

	patmath "github.com/drakos74/patrec/internal/math"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PriorTolerance is the allowed deviation of the class priors from 1.
const PriorTolerance = 1e-9

// Class holds the likelihood model of a single class,
// together with its prior probability.
type Class struct {
	Prior float64
	Mean  []float64
	Cov   *mat.SymDense
}

// ZeroOne returns the 0-1 loss matrix for k classes,
// e.g. unit cost for any wrong decision and zero cost on the diagonal.
func ZeroOne(k int) *mat.Dense {
	loss := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i != j {
				loss.Set(i, j, 1)
			}
		}
	}
	return loss
}

// Classifier decides the class of a sample by minimising the conditional risk
// under the given loss matrix.
// With a 0-1 loss this is equivalent to the MAP rule.
type Classifier struct {
	dim     int
	classes []Class
	chols   []*mat.Cholesky
	loss    *mat.Dense
}

// New creates a classifier for the given loss matrix and classes.
// It fails fast on priors not summing up to 1, on a loss matrix of the wrong shape
// and on any covariance that is not positive-definite.
func New(loss *mat.Dense, classes ...Class) (*Classifier, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("no classes given")
	}
	k := len(classes)
	if r, c := loss.Dims(); r != k || c != k {
		return nil, fmt.Errorf("loss matrix is %dx%d instead of %dx%d", r, c, k, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if loss.At(i, j) < 0 {
				return nil, fmt.Errorf("negative loss %f at (%d,%d)", loss.At(i, j), i, j)
			}
		}
	}
	dim := len(classes[0].Mean)
	sum := 0.0
	chols := make([]*mat.Cholesky, k)
	for i, cl := range classes {
		if cl.Prior < 0 {
			return nil, fmt.Errorf("negative prior %f for class %d", cl.Prior, i)
		}
		sum += cl.Prior
		if len(cl.Mean) != dim {
			return nil, fmt.Errorf("class %d has dimension %d instead of %d", i, len(cl.Mean), dim)
		}
		if cl.Cov == nil || cl.Cov.Symmetric() != dim {
			return nil, fmt.Errorf("class %d covariance does not match dimension %d", i, dim)
		}
		chol := &mat.Cholesky{}
		if ok := chol.Factorize(cl.Cov); !ok {
			return nil, fmt.Errorf("covariance of class %d is singular", i)
		}
		chols[i] = chol
	}
	if diff := sum - 1.0; diff > PriorTolerance || diff < -PriorTolerance {
		return nil, fmt.Errorf("priors sum up to %f instead of 1", sum)
	}
	return &Classifier{
		dim:     dim,
		classes: classes,
		chols:   chols,
		loss:    loss,
	}, nil
}

// Size returns the number of classes.
func (c *Classifier) Size() int {
	return len(c.classes)
}

// posteriors evaluates the (class x sample) posterior matrix.
// The densities are evaluated in log space and shifted by the per-sample maximum,
// so that very unlikely samples dont collapse to zero for all classes at once.
func (c *Classifier) posteriors(xx [][]float64) (*mat.Dense, error) {
	k := len(c.classes)
	n := len(xx)
	post := mat.NewDense(k, n, nil)
	lp := make([]float64, k)
	for j, x := range xx {
		if len(x) != c.dim {
			return nil, fmt.Errorf("sample %d has dimension %d instead of %d", j, len(x), c.dim)
		}
		max := math.Inf(-1)
		for i := range c.classes {
			ld, err := patmath.LogGaussian(c.chols[i], c.classes[i].Mean, x)
			if err != nil {
				return nil, fmt.Errorf("could not evaluate density of class %d: %w", i, err)
			}
			lp[i] = ld + math.Log(c.classes[i].Prior)
			if lp[i] > max {
				max = lp[i]
			}
		}
		for i := range lp {
			lp[i] = math.Exp(lp[i] - max)
		}
		sum := floats.Sum(lp)
		for i := range lp {
			post.Set(i, j, lp[i]/sum)
		}
	}
	return post, nil
}

// Decide returns the minimum-risk decision for every sample.
// The risk matrix is the product of the loss matrix with the posterior matrix,
// the decision is the row with the smallest risk in the sample column.
// Ties resolve to the lowest class index.
func (c *Classifier) Decide(xx [][]float64) ([]int, error) {
	if len(xx) == 0 {
		return []int{}, nil
	}
	post, err := c.posteriors(xx)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate posteriors: %w", err)
	}
	k := len(c.classes)
	n := len(xx)
	var risk mat.Dense
	risk.Mul(c.loss, post)

	decisions := make([]int, n)
	for j := 0; j < n; j++ {
		best := 0
		for i := 1; i < k; i++ {
			if risk.At(i, j) < risk.At(best, j) {
				best = i
			}
		}
		decisions[j] = best
	}
	return decisions, nil
}

// MAP returns the maximum-a-posteriori decision for every sample,
// ignoring the loss matrix.
// Ties resolve to the lowest class index.
func (c *Classifier) MAP(xx [][]float64) ([]int, error) {
	if len(xx) == 0 {
		return []int{}, nil
	}
	post, err := c.posteriors(xx)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate posteriors: %w", err)
	}
	k := len(c.classes)
	decisions := make([]int, len(xx))
	for j := range xx {
		best := 0
		for i := 1; i < k; i++ {
			if post.At(i, j) > post.At(best, j) {
				best = i
			}
		}
		decisions[j] = best
	}
	return decisions, nil
}

// Discriminant returns the log likelihood ratio log p(x|1) - log p(x|0) per sample.
// It is only defined for two classes and is the natural score for the ROC sweep,
// with the decision boundary at log of the prior ratio.
func (c *Classifier) Discriminant(xx [][]float64) ([]float64, error) {
	if len(c.classes) != 2 {
		return nil, fmt.Errorf("likelihood ratio needs 2 classes, got %d", len(c.classes))
	}
	scores := make([]float64, len(xx))
	for j, x := range xx {
		if len(x) != c.dim {
			return nil, fmt.Errorf("sample %d has dimension %d instead of %d", j, len(x), c.dim)
		}
		l1, err := patmath.LogGaussian(c.chols[1], c.classes[1].Mean, x)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate density of class 1: %w", err)
		}
		l0, err := patmath.LogGaussian(c.chols[0], c.classes[0].Mean, x)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate density of class 0: %w", err)
		}
		scores[j] = l1 - l0
	}
	return scores, nil
}

// Gamma returns the theoretical decision threshold for the likelihood ratio,
// e.g. log of the prior ratio p(0)/p(1).
func (c *Classifier) Gamma() (float64, error) {
	if len(c.classes) != 2 {
		return 0, fmt.Errorf("gamma needs 2 classes, got %d", len(c.classes))
	}
	return math.Log(c.classes[0].Prior / c.classes[1].Prior), nil
}
