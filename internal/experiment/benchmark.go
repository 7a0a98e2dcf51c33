package experiment

import (
	"fmt"

	"github.com/drakos74/patrec/internal/bayes"
	"github.com/drakos74/patrec/internal/math/ml"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/drakos74/patrec/internal/score"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// BenchmarkConfig drives one benchmark comparison.
type BenchmarkConfig struct {
	Train  int
	Test   int
	Hidden int
	Epochs int
	Trees  int
}

// Benchmark compares the risk-optimal rule against the learned classifiers
// on the same draw of the mixture.
type Benchmark struct {
	ID     string
	Bayes  float64
	MLP    float64
	Forest float64
	KMeans float64
}

// RunBenchmark samples a training and an evaluation set,
// trains the learned classifiers on the former
// and scores everything on the latter.
func RunBenchmark(model *mixture.Model, cls *bayes.Classifier, cfg BenchmarkConfig, src rand.Source) (*Benchmark, error) {
	if model.Size() != cls.Size() {
		return nil, fmt.Errorf("mixture has %d components for %d classes", model.Size(), cls.Size())
	}
	trainX, trainY, err := model.Sample(cfg.Train, src)
	if err != nil {
		return nil, fmt.Errorf("could not sample training set: %w", err)
	}
	testX, testY, err := model.Sample(cfg.Test, src)
	if err != nil {
		return nil, fmt.Errorf("could not sample evaluation set: %w", err)
	}

	benchmark := &Benchmark{ID: uuid.New().String()}

	decisions, err := cls.Decide(testX)
	if err != nil {
		return nil, fmt.Errorf("could not classify with risk rule: %w", err)
	}
	benchmark.Bayes, err = rate(cls.Size(), decisions, testY)
	if err != nil {
		return nil, fmt.Errorf("could not score risk rule: %w", err)
	}

	network := ml.NewMLP(model.Dim(), cfg.Hidden, cls.Size(), cfg.Epochs)
	if _, err := network.Train(trainX, trainY); err != nil {
		return nil, fmt.Errorf("could not train network: %w", err)
	}
	decisions, err = network.PredictAll(testX)
	if err != nil {
		return nil, fmt.Errorf("could not predict with network: %w", err)
	}
	benchmark.MLP, err = rate(cls.Size(), decisions, testY)
	if err != nil {
		return nil, fmt.Errorf("could not score network: %w", err)
	}

	forest := ml.NewForest(cfg.Trees)
	if err := forest.Train(trainX, trainY); err != nil {
		return nil, fmt.Errorf("could not train forest: %w", err)
	}
	decisions, err = forest.PredictAll(testX)
	if err != nil {
		return nil, fmt.Errorf("could not predict with forest: %w", err)
	}
	benchmark.Forest, err = rate(cls.Size(), decisions, testY)
	if err != nil {
		return nil, fmt.Errorf("could not score forest: %w", err)
	}

	kmeans := ml.NewKMeans(cls.Size(), 100)
	if err := kmeans.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("could not cluster: %w", err)
	}
	decisions, err = kmeans.PredictAll(testX)
	if err != nil {
		return nil, fmt.Errorf("could not predict with clusters: %w", err)
	}
	benchmark.KMeans, err = rate(cls.Size(), decisions, testY)
	if err != nil {
		return nil, fmt.Errorf("could not score clusters: %w", err)
	}

	log.Info().
		Str("id", benchmark.ID).
		Float64("bayes", benchmark.Bayes).
		Float64("mlp", benchmark.MLP).
		Float64("forest", benchmark.Forest).
		Float64("kmeans", benchmark.KMeans).
		Msg("benchmark run")

	return benchmark, nil
}

func rate(classes int, decisions, labels []int) (float64, error) {
	confusion, err := score.NewConfusion(classes)
	if err != nil {
		return 0, err
	}
	if err := confusion.AddAll(decisions, labels); err != nil {
		return 0, err
	}
	return confusion.ErrorRate(), nil
}
