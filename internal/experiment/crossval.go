package experiment

import (
	"fmt"

	"github.com/drakos74/patrec/internal/buffer"
	"github.com/drakos74/patrec/internal/math/ml"
	"github.com/drakos74/patrec/internal/score"
	"github.com/rs/zerolog/log"
)

// CVResult is the cross-validated error estimate for one hidden-layer width.
type CVResult struct {
	Hidden int
	Folds  int
	Mean   float64
	StDev  float64
}

// CrossValidate estimates the generalisation error of the network classifier
// for every hidden-layer width on the grid, with k-fold cross-validation.
// The folds are strided partitions of the input order and run sequentially,
// a fresh network is trained per fold.
func CrossValidate(xx [][]float64, yy []int, classes int, widths []int, folds, epochs int) ([]CVResult, error) {
	if len(xx) != len(yy) {
		return nil, fmt.Errorf("got %d samples for %d labels", len(xx), len(yy))
	}
	if folds < 2 {
		return nil, fmt.Errorf("need at least 2 folds, got %d", folds)
	}
	if len(xx) < folds {
		return nil, fmt.Errorf("need at least %d samples, got %d", folds, len(xx))
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths given")
	}
	dim := len(xx[0])

	results := make([]CVResult, 0, len(widths))
	for _, width := range widths {
		stats := buffer.NewStats()
		for fold := 0; fold < folds; fold++ {
			trainX := make([][]float64, 0, len(xx))
			trainY := make([]int, 0, len(yy))
			testX := make([][]float64, 0, len(xx)/folds+1)
			testY := make([]int, 0, len(yy)/folds+1)
			for i := range xx {
				if i%folds == fold {
					testX = append(testX, xx[i])
					testY = append(testY, yy[i])
				} else {
					trainX = append(trainX, xx[i])
					trainY = append(trainY, yy[i])
				}
			}

			network := ml.NewMLP(dim, width, classes, epochs)
			if _, err := network.Train(trainX, trainY); err != nil {
				return nil, fmt.Errorf("could not train fold %d for width %d: %w", fold, width, err)
			}
			decisions, err := network.PredictAll(testX)
			if err != nil {
				return nil, fmt.Errorf("could not predict fold %d for width %d: %w", fold, width, err)
			}
			confusion, err := score.NewConfusion(classes)
			if err != nil {
				return nil, fmt.Errorf("could not create tally: %w", err)
			}
			if err := confusion.AddAll(decisions, testY); err != nil {
				return nil, fmt.Errorf("could not score fold %d for width %d: %w", fold, width, err)
			}
			stats.Push(confusion.ErrorRate())
		}
		result := CVResult{
			Hidden: width,
			Folds:  folds,
			Mean:   stats.Avg(),
			StDev:  stats.SampleStDev(),
		}
		results = append(results, result)
		log.Info().
			Int("hidden", width).
			Int("folds", folds).
			Float64("mean", result.Mean).
			Float64("stdev", result.StDev).
			Msg("cross validated width")
	}
	return results, nil
}

// BestWidth returns the width with the lowest mean error, the first one on ties.
func BestWidth(results []CVResult) (CVResult, error) {
	if len(results) == 0 {
		return CVResult{}, fmt.Errorf("no results given")
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Mean < best.Mean {
			best = r
		}
	}
	return best, nil
}
