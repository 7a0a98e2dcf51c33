package math

import (
	"strconv"
)

// Format formats a float for terminal reports.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// ToFloat converts an int slice to the corresponding float slice.
func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}

// OneHot encodes the given label as a unit vector of the given size.
func OneHot(size, label int) []float64 {
	v := make([]float64, size)
	if label >= 0 && label < size {
		v[label] = 1
	}
	return v
}

// ArgMax returns the index of the largest value, the first one on ties.
func ArgMax(ff []float64) int {
	best := 0
	for i := 1; i < len(ff); i++ {
		if ff[i] > ff[best] {
			best = i
		}
	}
	return best
}
