package math

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {

	type test struct {
		x, y   []float64
		degree int
		cc     []float64
		err    bool
	}

	tests := map[string]test{
		"line": {
			x:      []float64{0, 1, 2, 3, 4},
			y:      []float64{1, 3, 5, 7, 9},
			degree: 1,
			cc:     []float64{1, 2},
		},
		"parabola": {
			x:      []float64{-2, -1, 0, 1, 2, 3},
			y:      []float64{4, 1, 0, 1, 4, 9},
			degree: 2,
			cc:     []float64{0, 0, 1},
		},
		"not-enough-points": {
			x:      []float64{0, 1},
			y:      []float64{0, 1},
			degree: 3,
			err:    true,
		},
		"inconsistent": {
			x:      []float64{0, 1, 2},
			y:      []float64{0, 1},
			degree: 1,
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cc, err := Fit(tt.x, tt.y, tt.degree)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.cc), len(cc))
			for i := range cc {
				assert.InDelta(t, tt.cc[i], cc[i], 1e-9)
			}
		})
	}

}

func TestInterpolate(t *testing.T) {

	type test struct {
		x, y     []float64
		cc       []float64
		singular bool
	}

	tests := map[string]test{
		"constant": {
			x:  []float64{5},
			y:  []float64{3},
			cc: []float64{3},
		},
		"cubic": {
			// 4 + 3x - 2x^2 + x^3
			x:  []float64{0, 1, 2, 3},
			y:  []float64{4, 6, 10, 22},
			cc: []float64{4, 3, -2, 1},
		},
		"duplicate": {
			x:        []float64{0, 1, 1, 3},
			y:        []float64{4, 6, 6, 22},
			singular: true,
		},
		"same-abscissa": {
			x:        []float64{2, 2, 2, 2},
			y:        []float64{1, 2, 3, 4},
			singular: true,
		},
		"same-abscissa-far": {
			x:        []float64{100, 100, 100, 100},
			y:        []float64{0, 0, 0, 0},
			singular: true,
		},
		"duplicate-pair": {
			x:        []float64{1, 1},
			y:        []float64{5, 7},
			singular: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cc, err := Interpolate(tt.x, tt.y)
			require.Equal(t, len(tt.x), len(cc))
			if tt.singular {
				assert.True(t, errors.Is(err, ErrSingular))
				for _, c := range cc {
					assert.True(t, math.IsNaN(c))
				}
				return
			}
			require.NoError(t, err)
			for i := range cc {
				assert.InDelta(t, tt.cc[i], cc[i], 1e-9)
			}
			for i, x := range tt.x {
				assert.InDelta(t, tt.y[i], Horner(cc, x), 1e-9)
			}
		})
	}

	_, err := Interpolate(nil, nil)
	assert.Error(t, err)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, -1, math.MaxFloat64))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}
