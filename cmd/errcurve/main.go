package main

import (
	"fmt"

	"github.com/drakos74/patrec/internal/bayes"
	"github.com/drakos74/patrec/internal/experiment"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func main() {

	priors := []float64{0.5, 0.5}
	means := [][]float64{
		{-1},
		{1},
	}
	covs := []*mat.SymDense{
		mat.NewSymDense(1, []float64{1}),
		mat.NewSymDense(1, []float64{1}),
	}

	model, err := mixture.New(
		mixture.Component{Weight: priors[0], Mean: means[0], Cov: covs[0]},
		mixture.Component{Weight: priors[1], Mean: means[1], Cov: covs[1]},
	)
	if err != nil {
		panic(fmt.Sprintf("could not set up mixture : %+v", err))
	}

	cls, err := bayes.New(bayes.ZeroOne(2),
		bayes.Class{Prior: priors[0], Mean: means[0], Cov: covs[0]},
		bayes.Class{Prior: priors[1], Mean: means[1], Cov: covs[1]},
	)
	if err != nil {
		panic(fmt.Sprintf("could not set up classifier : %+v", err))
	}

	sizes := []int{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000}
	curve, err := experiment.ErrorCurve(model, cls, sizes, rand.NewSource(42))
	if err != nil {
		panic(fmt.Sprintf("could not build error curve : %+v", err))
	}

	fmt.Print(curve.Render())
}
