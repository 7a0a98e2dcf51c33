package ml

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"

	patmath "github.com/drakos74/patrec/internal/math"
)

// Forest is a random-forest benchmark classifier over the labeled samples.
type Forest struct {
	trees  int
	forest *randomforest.Forest
}

// NewForest creates a forest with the given number of trees.
func NewForest(trees int) *Forest {
	return &Forest{
		trees: trees,
	}
}

// Train builds the forest on the given labeled set.
func (rf *Forest) Train(xx [][]float64, yy []int) error {
	if len(xx) != len(yy) {
		return fmt.Errorf("got %d samples for %d labels", len(xx), len(yy))
	}
	if len(xx) == 0 {
		return fmt.Errorf("no samples given")
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xx, Class: yy}
	forest.Train(rf.trees)
	rf.forest = forest
	log.Debug().
		Int("trees", rf.trees).
		Int("samples", len(xx)).
		Msg("trained forest")
	return nil
}

// Predict returns the class with the most votes for the sample.
func (rf *Forest) Predict(x []float64) (int, error) {
	if rf.forest == nil {
		return 0, fmt.Errorf("no model present")
	}
	votes := rf.forest.Vote(x)
	return patmath.ArgMax(votes), nil
}

// PredictAll returns the decisions for all the given samples.
func (rf *Forest) PredictAll(xx [][]float64) ([]int, error) {
	decisions := make([]int, len(xx))
	for i, x := range xx {
		d, err := rf.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("could not predict sample %d: %w", i, err)
		}
		decisions[i] = d
	}
	return decisions, nil
}

// Importance returns the feature importance of the trained forest.
func (rf *Forest) Importance() []float64 {
	if rf.forest == nil {
		return nil
	}
	return rf.forest.FeatureImportance
}
