package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestKMeans_FitAndPredict(t *testing.T) {

	xx, yy := separable(200, rand.NewSource(41))

	kmeans := NewKMeans(2, 100)
	assert.NoError(t, kmeans.Fit(xx, yy))

	decisions, err := kmeans.PredictAll(xx)
	assert.NoError(t, err)
	assert.Equal(t, len(xx), len(decisions))
	for _, d := range decisions {
		assert.GreaterOrEqual(t, d, 0)
		assert.Less(t, d, 2)
	}
}

func TestKMeans_Validation(t *testing.T) {

	kmeans := NewKMeans(2, 10)

	assert.Error(t, kmeans.Fit([][]float64{{1, 2}}, []int{0, 1}))
	assert.Error(t, kmeans.Fit([][]float64{{1, 2}}, []int{0}))

	_, err := kmeans.Predict([]float64{1, 2})
	assert.Error(t, err)
}
