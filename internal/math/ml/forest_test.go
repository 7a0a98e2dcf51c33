package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestForest_TrainAndPredict(t *testing.T) {

	xx, yy := separable(200, rand.NewSource(37))

	forest := NewForest(50)
	assert.NoError(t, forest.Train(xx, yy))

	decisions, err := forest.PredictAll(xx)
	assert.NoError(t, err)

	correct := 0
	for i, d := range decisions {
		if d == yy[i] {
			correct++
		}
	}
	// ten sigma of separation leaves the training set essentially learnable
	assert.Greater(t, float64(correct)/float64(len(yy)), 0.9)

	importance := forest.Importance()
	assert.Equal(t, 2, len(importance))
}

func TestForest_Validation(t *testing.T) {

	forest := NewForest(10)

	assert.Error(t, forest.Train(nil, nil))
	assert.Error(t, forest.Train([][]float64{{1, 2}}, []int{0, 1}))

	_, err := forest.Predict([]float64{1, 2})
	assert.Error(t, err)
}
