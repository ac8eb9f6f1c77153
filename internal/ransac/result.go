package ransac

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the outcome of a consensus search.
// Inliers and Outliers partition the fitted points.
type Result struct {
	ID       string  `json:"id"`
	Model    Model   `json:"model"`
	Inliers  []Point `json:"inliers"`
	Outliers []Point `json:"outliers"`
	// Trials is the number of minimal samples evaluated.
	Trials int `json:"trials"`
	// Degenerate is the number of minimal samples with a singular system.
	Degenerate int `json:"degenerate"`
	// BestTrial is the trial that produced the model, -1 if there was none.
	BestTrial int     `json:"best_trial"`
	Summary   Summary `json:"summary"`
	// Threshold is the inlier residual threshold the points were partitioned with.
	Threshold float64 `json:"threshold"`
	// Budget is the squared residual threshold the summary is checked against.
	Budget float64 `json:"budget"`
}

// Consensus checks if the search found any supporting point.
func (r Result) Consensus() bool {
	return len(r.Inliers) > 0
}

// WithinBudget checks the inlier squared residuals against the configured threshold.
func (r Result) WithinBudget() bool {
	return r.Consensus() && r.Summary.SumSquares <= r.Budget
}

func (r Result) clone() Result {
	c := r
	c.Inliers = append(make([]Point, 0, len(r.Inliers)), r.Inliers...)
	c.Outliers = append(make([]Point, 0, len(r.Outliers)), r.Outliers...)
	return c
}

// Summary describes the inlier residuals of a result.
type Summary struct {
	Count      int     `json:"count"`
	MeanAbs    float64 `json:"mean_abs"`
	RMS        float64 `json:"rms"`
	SumSquares float64 `json:"sum_squares"`
	StDev      float64 `json:"stdev"`
}

// Summarize computes the residual summary of the points against the model.
func Summarize(m Model, pp []Point) Summary {
	if len(pp) == 0 {
		return Summary{}
	}
	rr := Residuals(m, pp)
	abs := make([]float64, len(rr))
	for i, r := range rr {
		abs[i] = math.Abs(r)
	}
	s := Summary{
		Count:      len(rr),
		MeanAbs:    stat.Mean(abs, nil),
		SumSquares: floats.Dot(rr, rr),
	}
	s.RMS = math.Sqrt(s.SumSquares / float64(len(rr)))
	if len(rr) > 1 {
		s.StDev = stat.StdDev(rr, nil)
	}
	return s
}

// Residuals returns the vertical residual of each point against the model.
func Residuals(m Model, pp []Point) []float64 {
	rr := make([]float64, len(pp))
	for i, p := range pp {
		rr[i] = m.Residual(p)
	}
	return rr
}

// Inlier checks if the point lies within the threshold of the model.
// Points are never inliers of an undefined model.
func Inlier(m Model, p Point, threshold float64) bool {
	r := m.Residual(p)
	return r >= -threshold && r <= threshold
}

// Partition splits the points into inliers and outliers of the model, preserving their order.
func Partition(m Model, pp []Point, threshold float64) (inliers, outliers []Point) {
	inliers = make([]Point, 0)
	outliers = make([]Point, 0)
	for _, p := range pp {
		if Inlier(m, p, threshold) {
			inliers = append(inliers, p)
		} else {
			outliers = append(outliers, p)
		}
	}
	return inliers, outliers
}

func undefinedModel() Model {
	nan := math.NaN()
	return Model{A: nan, B: nan, C: nan, D: nan}
}
