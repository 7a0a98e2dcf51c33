package main

import (
	"fmt"
	"os"

	"github.com/drakos74/patrec/internal/bayes"
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

	priors := []float64{0.65, 0.35}
	means := [][]float64{
		{-1, -1},
		{1, 1},
	}
	covs := []*mat.SymDense{
		mat.NewSymDense(2, []float64{1, -0.4, -0.4, 0.5}),
		mat.NewSymDense(2, []float64{0.5, 0.3, 0.3, 1}),
	}

	model, err := mixture.New(
		mixture.Component{Weight: priors[0], Mean: means[0], Cov: covs[0]},
		mixture.Component{Weight: priors[1], Mean: means[1], Cov: covs[1]},
	)
	if err != nil {
		panic(fmt.Sprintf("could not set up mixture : %+v", err))
	}

	// unit cost for any wrong decision
	cls, err := bayes.New(bayes.ZeroOne(2),
		bayes.Class{Prior: priors[0], Mean: means[0], Cov: covs[0]},
		bayes.Class{Prior: priors[1], Mean: means[1], Cov: covs[1]},
	)
	if err != nil {
		panic(fmt.Sprintf("could not set up classifier : %+v", err))
	}

	report, err := experiment.Run(model, cls, 10000, rand.NewSource(42))
	if err != nil {
		panic(fmt.Sprintf("could not run experiment : %+v", err))
	}

	gamma, err := cls.Gamma()
	if err != nil {
		panic(fmt.Sprintf("could not compute gamma : %+v", err))
	}

	fmt.Printf("run %s\n", report.ID)
	fmt.Printf("theoretical gamma = %s\n", patmath.Format(gamma))
	fmt.Printf("empirical error = %s\n", patmath.Format(report.Error))
	report.Confusion.Render(os.Stdout)
}
