package ransac

import (
	"errors"
	"fmt"

	xmath "github.com/drakos74/ransac/internal/math"
	"gonum.org/v1/gonum/mat"
)

// SolveCubic returns the cubic passing through the 4 given points.
// If the points do not determine a unique cubic, the model is undefined (NaN)
// and the error wraps ErrDegenerateModel.
// If the system is ill-conditioned the solution is returned with a mat.Condition error,
// in which case the model might not be exact.
func SolveCubic(pp [SampleSize]Point) (Model, error) {
	xx, yy := Points(pp[:])
	cc, err := xmath.Interpolate(xx, yy)
	if errors.Is(err, xmath.ErrSingular) {
		return NewModel(cc), fmt.Errorf("could not solve for %v: %w", pp, ErrDegenerateModel)
	}
	return NewModel(cc), err
}

// IllConditioned checks if the solver error only reports a poorly conditioned system.
func IllConditioned(err error) bool {
	var cond mat.Condition
	return errors.As(err, &cond)
}
