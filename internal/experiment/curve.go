package experiment

import (
	"fmt"
	"strings"

	"github.com/drakos74/patrec/internal/bayes"
	patmath "github.com/drakos74/patrec/internal/math"
	"github.com/drakos74/patrec/internal/mixture"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// CurvePoint is the empirical error at one sample size,
// next to the error of the rule on a fresh evaluation set.
type CurvePoint struct {
	N           int
	Error       float64
	Theoretical float64
}

// Curve is the empirical error as a function of the sample size,
// with an optional polynomial trend fitted through the points.
type Curve struct {
	ID     string
	Points []CurvePoint
	Trend  []float64
}

// ErrorCurve runs one experiment per sample size and collects the error rates.
func ErrorCurve(model *mixture.Model, cls *bayes.Classifier, sizes []int, src rand.Source) (*Curve, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sample sizes given")
	}
	curve := &Curve{
		ID:     uuid.New().String(),
		Points: make([]CurvePoint, 0, len(sizes)),
	}
	for _, n := range sizes {
		report, err := Run(model, cls, n, src)
		if err != nil {
			return nil, fmt.Errorf("could not run for %d samples: %w", n, err)
		}
		curve.Points = append(curve.Points, CurvePoint{N: n, Error: report.Error, Theoretical: report.Theoretical})
	}

	xx := patmath.ToFloat(sizes)
	yy := make([]float64, len(curve.Points))
	for i, p := range curve.Points {
		yy[i] = p.Error
	}
	trend, err := patmath.Fit(xx, yy, 2)
	if err != nil {
		// not enough points for a trend is fine, the curve is still usable
		log.Warn().Err(err).Int("points", len(curve.Points)).Msg("could not fit trend")
	} else {
		curve.Trend = trend
	}
	return curve, nil
}

// Render plots the empirical errors with the fitted trend underneath.
func (c *Curve) Render() string {
	yy := make([]float64, len(c.Points))
	for i, p := range c.Points {
		yy[i] = p.Error
	}
	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(yy,
		asciigraph.Height(10),
		asciigraph.Caption("empirical error vs sample size")))
	sb.WriteString("\n")
	for _, p := range c.Points {
		sb.WriteString(fmt.Sprintf("N=%d error=%s optimum=%s", p.N, patmath.Format(p.Error), patmath.Format(p.Theoretical)))
		if c.Trend != nil {
			sb.WriteString(fmt.Sprintf(" trend=%s", patmath.Format(patmath.Eval(c.Trend, float64(p.N)))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
