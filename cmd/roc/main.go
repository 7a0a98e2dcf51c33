package main

import (
	"fmt"

	"github.com/drakos74/patrec/internal/bayes"
	"github.com/drakos74/patrec/internal/experiment"
	patmath "github.com/drakos74/patrec/internal/math"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/drakos74/patrec/internal/score"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	priors := []float64{0.8, 0.2}
	means := [][]float64{
		{-2, 0},
		{2, 0},
	}
	covs := []*mat.SymDense{
		mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1}),
		mat.NewSymDense(2, []float64{1, -0.5, -0.5, 2}),
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

	samples, labels, err := model.Sample(10000, rand.NewSource(42))
	if err != nil {
		panic(fmt.Sprintf("could not sample : %+v", err))
	}

	scores, err := cls.Discriminant(samples)
	if err != nil {
		panic(fmt.Sprintf("could not compute discriminant : %+v", err))
	}

	curve, err := score.ROC(scores, labels)
	if err != nil {
		panic(fmt.Sprintf("could not estimate roc : %+v", err))
	}

	gamma, err := cls.Gamma()
	if err != nil {
		panic(fmt.Sprintf("could not compute gamma : %+v", err))
	}

	fisherScores, w, err := experiment.FisherScores(samples, labels)
	if err != nil {
		panic(fmt.Sprintf("could not project samples : %+v", err))
	}

	fisherCurve, err := score.ROC(fisherScores, labels)
	if err != nil {
		panic(fmt.Sprintf("could not estimate projection roc : %+v", err))
	}

	fmt.Println("log likelihood ratio")
	fmt.Print(experiment.RenderROC(curve))
	fmt.Printf("theoretical gamma = %s , empirical gamma = %s\n",
		patmath.Format(gamma), patmath.Format(curve.Best.Threshold))

	fmt.Printf("fisher projection w = ( %s , %s )\n",
		patmath.Format(w[0]), patmath.Format(w[1]))
	fmt.Print(experiment.RenderROC(fisherCurve))
}
