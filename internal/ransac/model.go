package ransac

import (
	"fmt"

	xmath "github.com/drakos74/ransac/internal/math"
)

// Model is the cubic a*x^3 + b*x^2 + c*x + d.
// Coefficients are NaN when the model could not be determined.
type Model struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// NewModel creates a model from coefficients in ascending order of power, as returned by the math package.
func NewModel(cc []float64) Model {
	if len(cc) != Degree+1 {
		panic(fmt.Sprintf("inconsistent coefficients for cubic model: %d", len(cc)))
	}
	return Model{
		A: cc[3],
		B: cc[2],
		C: cc[1],
		D: cc[0],
	}
}

// Coefficients returns the coefficients in ascending order of power.
func (m Model) Coefficients() []float64 {
	return []float64{m.D, m.C, m.B, m.A}
}

// Eval evaluates the model at x.
func (m Model) Eval(x float64) float64 {
	return m.A*x*x*x + m.B*x*x + m.C*x + m.D
}

// Residual is the vertical distance of the point from the model.
func (m Model) Residual(p Point) float64 {
	return p.Y - m.Eval(p.X)
}

// Defined checks that all coefficients are finite.
func (m Model) Defined() bool {
	return xmath.Finite(m.A, m.B, m.C, m.D)
}

func (m Model) String() string {
	return fmt.Sprintf("%v*x^3 + %v*x^2 + %v*x + %v", m.A, m.B, m.C, m.D)
}
