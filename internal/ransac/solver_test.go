package ransac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveCubic(t *testing.T) {

	type test struct {
		points  [SampleSize]Point
		model   Model
		defined bool
	}

	on := func(x float64) Point {
		return Point{X: x, Y: truth.Eval(x)}
	}

	tests := map[string]test{
		"exact": {
			points:  [SampleSize]Point{on(1), on(50), on(120), on(299)},
			model:   truth,
			defined: true,
		},
		"unordered": {
			points:  [SampleSize]Point{on(7), on(-3), on(0), on(2)},
			model:   truth,
			defined: true,
		},
		"line": {
			points:  [SampleSize]Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}},
			model:   Model{C: 2, D: 1},
			defined: true,
		},
		"duplicate": {
			points:  [SampleSize]Point{on(1), on(1), on(2), on(3)},
			defined: false,
		},
		"same-abscissa": {
			points:  [SampleSize]Point{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}},
			defined: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := SolveCubic(tt.points)
			assert.Equal(t, tt.defined, m.Defined())
			if !tt.defined {
				assert.ErrorIs(t, err, ErrDegenerateModel)
				for _, p := range tt.points {
					assert.False(t, Inlier(m, p, 1e9))
				}
				return
			}
			if err != nil {
				assert.True(t, IllConditioned(err))
			}
			assert.InDelta(t, tt.model.A, m.A, 1e-6)
			assert.InDelta(t, tt.model.B, m.B, 1e-6)
			assert.InDelta(t, tt.model.C, m.C, 1e-6)
			assert.InDelta(t, tt.model.D, m.D, 1e-6)
		})
	}

}

func TestModel(t *testing.T) {

	m := Model{A: 1, B: -2, C: 3, D: 4}
	assert.Equal(t, []float64{4, 3, -2, 1}, m.Coefficients())
	assert.Equal(t, m, NewModel(m.Coefficients()))
	assert.Equal(t, 4.0, m.Eval(0))
	assert.Equal(t, 6.0, m.Eval(1))
	assert.Equal(t, 1.0, m.Residual(Point{X: 1, Y: 7}))
	assert.True(t, m.Defined())
	assert.False(t, undefinedModel().Defined())
	assert.Panics(t, func() {
		NewModel([]float64{1, 2})
	})
}
