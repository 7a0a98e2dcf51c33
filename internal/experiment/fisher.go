package experiment

import (
	"fmt"

	"github.com/drakos74/patrec/internal/lda"
)

// FisherScores fits the Fisher discriminant direction on the labelled samples
// and projects every sample onto it.
// The projections are scalar scores and sweep into an ROC curve
// the same way the log likelihood ratio does.
func FisherScores(xx [][]float64, labels []int) ([]float64, []float64, error) {
	if len(xx) != len(labels) {
		return nil, nil, fmt.Errorf("got %d samples for %d labels", len(xx), len(labels))
	}
	var x0, x1 [][]float64
	for i, l := range labels {
		switch l {
		case 0:
			x0 = append(x0, xx[i])
		case 1:
			x1 = append(x1, xx[i])
		default:
			return nil, nil, fmt.Errorf("label %d at sample %d is not binary", l, i)
		}
	}
	w, err := lda.Fisher(x0, x1)
	if err != nil {
		return nil, nil, fmt.Errorf("could not fit discriminant direction: %w", err)
	}
	scores, err := lda.Project(w, xx)
	if err != nil {
		return nil, nil, fmt.Errorf("could not project samples: %w", err)
	}
	return scores, w, nil
}
