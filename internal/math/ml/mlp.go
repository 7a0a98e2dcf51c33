package ml

import (
	"fmt"
	"math"

	patmath "github.com/drakos74/patrec/internal/math"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

// MLP is a two-layer feed-forward classifier,
// tanh hidden layer of configurable width with a softmax output.
// Targets are one-hot encoded class labels.
type MLP struct {
	inputs  int
	hidden  int
	outputs int
	epochs  int
	net     *ff.Network
}

// NewMLP creates a classifier network for the given layout.
func NewMLP(inputs, hidden, outputs, epochs int) *MLP {
	rate := xml.Learn(1, 0.1)

	initW := xmath.Rand(-1, 1, math.Sqrt)
	initB := xmath.Rand(-1, 1, math.Sqrt)
	network := ff.New(inputs, outputs).
		Add(hidden, net.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(xml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(outputs, net.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(xml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(outputs, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(xml.Pow)

	return &MLP{
		inputs:  inputs,
		hidden:  hidden,
		outputs: outputs,
		epochs:  epochs,
		net:     network,
	}
}

// Hidden returns the width of the hidden layer.
func (m *MLP) Hidden() int {
	return m.hidden
}

// Train runs the fixed-epoch gradient descent on the given labeled set
// and returns the mean sample loss of the last epoch.
func (m *MLP) Train(xx [][]float64, yy []int) (float64, error) {
	if len(xx) != len(yy) {
		return 0, fmt.Errorf("got %d samples for %d labels", len(xx), len(yy))
	}
	if len(xx) == 0 {
		return 0, fmt.Errorf("no samples given")
	}
	l := 0.0
	for e := 0; e < m.epochs; e++ {
		l = 0.0
		for i, x := range xx {
			if len(x) != m.inputs {
				return 0, fmt.Errorf("sample %d has dimension %d instead of %d", i, len(x), m.inputs)
			}
			inp := xmath.Vec(len(x)).With(x...)
			exp := patmath.OneHot(m.outputs, yy[i])
			loss, _ := m.net.Train(inp, xmath.Vec(m.outputs).With(exp...))
			l += loss.Norm()
		}
		l /= float64(len(xx))
	}
	log.Debug().
		Int("hidden", m.hidden).
		Int("epochs", m.epochs).
		Float64("loss", l).
		Msg("trained network")
	return l, nil
}

// Predict returns the class with the strongest softmax output for the sample.
func (m *MLP) Predict(x []float64) (int, error) {
	if len(x) != m.inputs {
		return 0, fmt.Errorf("sample has dimension %d instead of %d", len(x), m.inputs)
	}
	out := m.net.Predict(xmath.Vec(len(x)).With(x...))
	return patmath.ArgMax(out), nil
}

// PredictAll returns the decisions for all the given samples.
func (m *MLP) PredictAll(xx [][]float64) ([]int, error) {
	decisions := make([]int, len(xx))
	for i, x := range xx {
		d, err := m.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("could not predict sample %d: %w", i, err)
		}
		decisions[i] = d
	}
	return decisions, nil
}
