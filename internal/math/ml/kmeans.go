package ml

import (
	"fmt"
	"math"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"
)

// KMeans is an unsupervised baseline over the mixture samples.
// The clusters are mapped to class labels by majority vote,
// so that the clustering can be scored against the true labels
// like any other classifier.
type KMeans struct {
	k          int
	iterations int
	model      *cluster.KMeans
	mapping    []int
}

// NewKMeans creates a clusterer for k clusters and the given iteration budget.
func NewKMeans(k, iterations int) *KMeans {
	return &KMeans{
		k:          k,
		iterations: iterations,
	}
}

// Fit clusters the given samples and maps every cluster
// to the true label it contains most often.
func (km *KMeans) Fit(xx [][]float64, yy []int) error {
	if len(xx) != len(yy) {
		return fmt.Errorf("got %d samples for %d labels", len(xx), len(yy))
	}
	if len(xx) < km.k {
		return fmt.Errorf("need at least %d samples, got %d", km.k, len(xx))
	}
	model := cluster.NewKMeans(km.k, km.iterations, xx)
	if err := model.Learn(); err != nil {
		return fmt.Errorf("could not cluster: %w", err)
	}
	guesses := model.Guesses()
	if len(guesses) != len(yy) {
		return fmt.Errorf("could not align guesses with labels [ %d | %d ]", len(guesses), len(yy))
	}

	// majority label per cluster
	votes := make([]map[int]int, km.k)
	for i := range votes {
		votes[i] = make(map[int]int)
	}
	for i, g := range guesses {
		if g < 0 || g >= km.k {
			return fmt.Errorf("cluster %d out of range [0,%d)", g, km.k)
		}
		votes[g][yy[i]]++
	}
	mapping := make([]int, km.k)
	for g, vv := range votes {
		best := 0
		count := -1
		for label, c := range vv {
			if c > count || (c == count && label < best) {
				best = label
				count = c
			}
		}
		mapping[g] = best
	}

	km.model = model
	km.mapping = mapping
	log.Debug().
		Int("clusters", km.k).
		Int("samples", len(xx)).
		Ints("mapping", mapping).
		Msg("clustered samples")
	return nil
}

// Predict assigns the sample to its nearest cluster
// and returns the class that cluster was mapped to.
func (km *KMeans) Predict(x []float64) (int, error) {
	if km.model == nil {
		return 0, fmt.Errorf("no model present")
	}
	guess, err := km.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}
	g := int(math.Round(guess[0]))
	if g < 0 || g >= len(km.mapping) {
		return 0, fmt.Errorf("cluster %d out of range [0,%d)", g, len(km.mapping))
	}
	return km.mapping[g], nil
}

// PredictAll returns the decisions for all the given samples.
func (km *KMeans) PredictAll(xx [][]float64) ([]int, error) {
	decisions := make([]int, len(xx))
	for i, x := range xx {
		d, err := km.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("could not predict sample %d: %w", i, err)
		}
		decisions[i] = d
	}
	return decisions, nil
}
