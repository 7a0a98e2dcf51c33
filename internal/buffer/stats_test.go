package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	type test struct {
		values   []float64
		avg      float64
		min      float64
		max      float64
		sum      float64
		variance float64
	}

	tests := map[string]test{
		"constant": {
			values:   []float64{2, 2, 2, 2},
			avg:      2,
			min:      2,
			max:      2,
			sum:      8,
			variance: 0,
		},
		"increasing": {
			values:   []float64{1, 2, 3, 4, 5},
			avg:      3,
			min:      1,
			max:      5,
			sum:      15,
			variance: 2,
		},
		"mixed-signs": {
			values:   []float64{-2, 0, 2},
			avg:      0,
			min:      -2,
			max:      2,
			sum:      0,
			variance: 8.0 / 3.0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStats()
			for _, v := range tt.values {
				s.Push(v)
			}
			assert.Equal(t, len(tt.values), s.Count())
			assert.InDelta(t, tt.avg, s.Avg(), 1e-9)
			assert.InDelta(t, tt.min, s.Min(), 1e-9)
			assert.InDelta(t, tt.max, s.Max(), 1e-9)
			assert.InDelta(t, tt.sum, s.Sum(), 1e-9)
			assert.InDelta(t, tt.variance, s.Variance(), 1e-9)
			assert.InDelta(t, math.Sqrt(tt.variance), s.StDev(), 1e-9)
		})
	}
}

func TestStats_Empty(t *testing.T) {
	s := NewStats()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.SampleVariance())
}

func TestStatsCollector_Push(t *testing.T) {

	sc := NewStatsCollector(2)
	sc.Push(1, 10)
	sc.Push(3, 30)

	assert.Equal(t, 2, sc.Dim())
	assert.InDelta(t, 2, sc.Stats(0).Avg(), 1e-9)
	assert.InDelta(t, 20, sc.Stats(1).Avg(), 1e-9)

	// mismatched dimensions are ignored
	sc.Push(1)
	assert.Equal(t, 2, sc.Stats(0).Count())
}
