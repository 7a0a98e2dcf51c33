package experiment

import (
	"fmt"
	"strings"

	patmath "github.com/drakos74/patrec/internal/math"
	"github.com/drakos74/patrec/internal/score"
	"github.com/guptarohit/asciigraph"
)

// RenderROC plots the ROC curve as TPR over a uniform FPR grid,
// with the minimum-error operating point printed underneath.
func RenderROC(curve *score.Curve) string {
	grid := 50
	yy := make([]float64, grid+1)
	for i := 0; i <= grid; i++ {
		fpr := float64(i) / float64(grid)
		yy[i] = tprAt(curve, fpr)
	}
	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(yy,
		asciigraph.Height(10),
		asciigraph.Caption("TPR vs FPR")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("min P(error) = %s at gamma = %s (FPR=%s , TPR=%s)\n",
		patmath.Format(curve.MinError),
		patmath.Format(curve.Best.Threshold),
		patmath.Format(curve.Best.FPR),
		patmath.Format(curve.Best.TPR)))
	return sb.String()
}

// RenderSeries plots a plain series with the given caption.
func RenderSeries(caption string, yy []float64) string {
	return asciigraph.Plot(yy,
		asciigraph.Height(10),
		asciigraph.Caption(caption))
}

// tprAt interpolates the curve at the given false positive rate.
// The points are ordered from (0,0) to (1,1) as the threshold decreases.
func tprAt(curve *score.Curve, fpr float64) float64 {
	points := curve.Points
	if len(points) == 0 {
		return 0
	}
	prev := points[0]
	for _, p := range points[1:] {
		if p.FPR >= fpr {
			if p.FPR == prev.FPR {
				return p.TPR
			}
			f := (fpr - prev.FPR) / (p.FPR - prev.FPR)
			return prev.TPR + f*(p.TPR-prev.TPR)
		}
		prev = p
	}
	return points[len(points)-1].TPR
}
