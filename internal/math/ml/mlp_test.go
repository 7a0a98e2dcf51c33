package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func separable(n int, src rand.Source) ([][]float64, []int) {
	rnd := rand.New(src)
	xx := make([][]float64, n)
	yy := make([]int, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			xx[i] = []float64{rnd.NormFloat64() - 5, rnd.NormFloat64()}
			yy[i] = 0
		} else {
			xx[i] = []float64{rnd.NormFloat64() + 5, rnd.NormFloat64()}
			yy[i] = 1
		}
	}
	return xx, yy
}

func TestMLP_TrainAndPredict(t *testing.T) {

	xx, yy := separable(100, rand.NewSource(31))

	network := NewMLP(2, 8, 2, 10)
	assert.Equal(t, 8, network.Hidden())

	loss, err := network.Train(xx, yy)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, loss, 0.0)

	decisions, err := network.PredictAll(xx)
	assert.NoError(t, err)
	assert.Equal(t, len(xx), len(decisions))
	for _, d := range decisions {
		assert.GreaterOrEqual(t, d, 0)
		assert.Less(t, d, 2)
	}
}

func TestMLP_Validation(t *testing.T) {

	network := NewMLP(2, 4, 2, 1)

	_, err := network.Train(nil, nil)
	assert.Error(t, err)

	_, err = network.Train([][]float64{{1, 2}}, []int{0, 1})
	assert.Error(t, err)

	_, err = network.Train([][]float64{{1}}, []int{0})
	assert.Error(t, err)

	_, err = network.Predict([]float64{1})
	assert.Error(t, err)
}
