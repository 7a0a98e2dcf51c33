package experiment

import (
	"fmt"

	"github.com/drakos74/patrec/internal/bayes"
	"github.com/drakos74/patrec/internal/buffer"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/drakos74/patrec/internal/score"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// evalSize is the size of the fresh draw used to estimate the error
// of the decision rule itself, independent of the experiment size.
const evalSize = 10000

// Report is the outcome of a single generate - classify - score pass.
// Theoretical is the error of the same rule on a large fresh draw,
// the reference the empirical rate converges to as the sample grows.
// Features summarises the feature values per generating class.
type Report struct {
	ID          string
	Samples     int
	Confusion   *score.Confusion
	Error       float64
	Theoretical float64
	Features    []*buffer.StatsCollector
}

// Run draws n samples from the mixture, decides them with the classifier
// and scores the decisions against the generating components.
func Run(model *mixture.Model, cls *bayes.Classifier, n int, src rand.Source) (*Report, error) {
	if model.Size() != cls.Size() {
		return nil, fmt.Errorf("mixture has %d components for %d classes", model.Size(), cls.Size())
	}

	id := uuid.New().String()

	samples, labels, err := model.Sample(n, src)
	if err != nil {
		return nil, fmt.Errorf("could not sample: %w", err)
	}

	decisions, err := cls.Decide(samples)
	if err != nil {
		return nil, fmt.Errorf("could not classify: %w", err)
	}

	confusion, err := score.NewConfusion(cls.Size())
	if err != nil {
		return nil, fmt.Errorf("could not create tally: %w", err)
	}
	if err := confusion.AddAll(decisions, labels); err != nil {
		return nil, fmt.Errorf("could not score decisions: %w", err)
	}

	features := make([]*buffer.StatsCollector, cls.Size())
	for i := range features {
		features[i] = buffer.NewStatsCollector(model.Dim())
	}
	for i, x := range samples {
		features[labels[i]].Push(x...)
	}

	theoretical, err := evalError(model, cls, src)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate rule: %w", err)
	}

	report := &Report{
		ID:          id,
		Samples:     n,
		Confusion:   confusion,
		Error:       confusion.ErrorRate(),
		Theoretical: theoretical,
		Features:    features,
	}

	log.Info().
		Str("id", id).
		Int("samples", n).
		Int("classes", cls.Size()).
		Float64("error", report.Error).
		Float64("optimum", report.Theoretical).
		Msg("experiment run")

	return report, nil
}

// evalError estimates the error of the decision rule on a fresh evaluation set.
func evalError(model *mixture.Model, cls *bayes.Classifier, src rand.Source) (float64, error) {
	samples, labels, err := model.Sample(evalSize, src)
	if err != nil {
		return 0, fmt.Errorf("could not sample evaluation set: %w", err)
	}
	decisions, err := cls.Decide(samples)
	if err != nil {
		return 0, fmt.Errorf("could not classify evaluation set: %w", err)
	}
	wrong := 0
	for i, d := range decisions {
		if d != labels[i] {
			wrong++
		}
	}
	return float64(wrong) / float64(evalSize), nil
}
