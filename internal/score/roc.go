package score

import (
	"fmt"
	"sort"
)

// Point is one operating point of the empirical ROC curve.
type Point struct {
	Threshold float64
	FPR       float64
	TPR       float64
}

// Curve is the empirical ROC curve of a binary discriminant,
// ordered from the highest threshold (FPR=0 , TPR=0)
// to the lowest (FPR=1 , TPR=1).
type Curve struct {
	Points []Point
	// Best is the operating point with the minimum empirical probability of error.
	Best Point
	// MinError is the probability of error at the Best point.
	MinError float64
}

// ROC estimates the empirical ROC curve for the given discriminant scores
// against the binary true labels.
// The sweep visits one threshold below the minimum score,
// one between every consecutive pair of sorted distinct scores
// and one above the maximum.
func ROC(scores []float64, labels []int) (*Curve, error) {
	if len(scores) != len(labels) {
		return nil, fmt.Errorf("got %d scores for %d labels", len(scores), len(labels))
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("no scores given")
	}
	positives := 0
	negatives := 0
	for i, l := range labels {
		switch l {
		case 0:
			negatives++
		case 1:
			positives++
		default:
			return nil, fmt.Errorf("label %d at %d is not binary", l, i)
		}
	}
	if positives == 0 || negatives == 0 {
		return nil, fmt.Errorf("need both labels present, got %d positives and %d negatives", positives, negatives)
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	// distinct boundaries: below the minimum, between consecutive distinct scores, above the maximum
	thresholds := make([]float64, 0, len(sorted)+1)
	thresholds = append(thresholds, sorted[len(sorted)-1]+1)
	for i := len(sorted) - 1; i > 0; i-- {
		if sorted[i] != sorted[i-1] {
			thresholds = append(thresholds, (sorted[i]+sorted[i-1])/2)
		}
	}
	thresholds = append(thresholds, sorted[0]-1)

	total := float64(len(scores))
	curve := &Curve{
		Points:   make([]Point, 0, len(thresholds)),
		MinError: 1,
	}
	for _, gamma := range thresholds {
		fp := 0
		tp := 0
		for i, s := range scores {
			if s < gamma {
				continue
			}
			if labels[i] == 1 {
				tp++
			} else {
				fp++
			}
		}
		p := Point{
			Threshold: gamma,
			FPR:       float64(fp) / float64(negatives),
			TPR:       float64(tp) / float64(positives),
		}
		curve.Points = append(curve.Points, p)

		pErr := (float64(fp) + float64(positives-tp)) / total
		if pErr < curve.MinError {
			curve.MinError = pErr
			curve.Best = p
		}
	}
	return curve, nil
}
