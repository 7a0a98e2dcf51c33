package main

import (
	"fmt"

	"github.com/drakos74/patrec/internal/experiment"
	patmath "github.com/drakos74/patrec/internal/math"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	model, err := mixture.New(
		mixture.Component{Weight: 0.3, Mean: []float64{-2, 0}, Cov: mat.NewSymDense(2, []float64{1, 0, 0, 1})},
		mixture.Component{Weight: 0.3, Mean: []float64{2, 0}, Cov: mat.NewSymDense(2, []float64{1, 0, 0, 1})},
		mixture.Component{Weight: 0.4, Mean: []float64{0, 2}, Cov: mat.NewSymDense(2, []float64{1, 0, 0, 1})},
	)
	if err != nil {
		panic(fmt.Sprintf("could not set up mixture : %+v", err))
	}

	samples, labels, err := model.Sample(1000, rand.NewSource(42))
	if err != nil {
		panic(fmt.Sprintf("could not sample : %+v", err))
	}

	widths := []int{2, 4, 8, 16, 32}
	results, err := experiment.CrossValidate(samples, labels, model.Size(), widths, 10, 50)
	if err != nil {
		panic(fmt.Sprintf("could not cross validate : %+v", err))
	}

	errors := make([]float64, len(results))
	for i, r := range results {
		errors[i] = r.Mean
		fmt.Printf("hidden=%d folds=%d error=%s stdev=%s\n",
			r.Hidden, r.Folds, patmath.Format(r.Mean), patmath.Format(r.StDev))
	}
	fmt.Println(experiment.RenderSeries("cv error vs hidden width", errors))

	best, err := experiment.BestWidth(results)
	if err != nil {
		panic(fmt.Sprintf("could not select width : %+v", err))
	}
	fmt.Printf("best width = %d with error %s\n", best.Hidden, patmath.Format(best.Mean))
}
