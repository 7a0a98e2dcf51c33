package experiment

import (
	"testing"

	"github.com/drakos74/patrec/internal/score"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestRunBenchmark(t *testing.T) {

	model, cls := setup(t)

	benchmark, err := RunBenchmark(model, cls, BenchmarkConfig{
		Train:  100,
		Test:   50,
		Hidden: 4,
		Epochs: 5,
		Trees:  20,
	}, rand.NewSource(13))
	assert.NoError(t, err)

	assert.NotEmpty(t, benchmark.ID)
	for _, e := range []float64{benchmark.Bayes, benchmark.MLP, benchmark.Forest, benchmark.KMeans} {
		assert.GreaterOrEqual(t, e, 0.0)
		assert.LessOrEqual(t, e, 1.0)
	}
	// the risk-optimal rule knows the true distributions
	assert.Less(t, benchmark.Bayes, 0.2)
}

func TestRenderROC(t *testing.T) {

	scores := []float64{-2, -1, 1, 2}
	labels := []int{0, 0, 1, 1}
	curve, err := score.ROC(scores, labels)
	assert.NoError(t, err)

	out := RenderROC(curve)
	assert.Contains(t, out, "TPR vs FPR")
	assert.Contains(t, out, "min P(error)")
}
