package ransac

import (
	"fmt"

	xmath "github.com/drakos74/ransac/internal/math"
	"github.com/google/uuid"
)

// Refiner re-estimates a model from its inliers.
type Refiner func(m Model, inliers []Point) (Model, error)

// Refine re-estimates the model as the least squares cubic over the inliers.
// The given model is returned unchanged if the re-estimation is not possible.
func Refine(m Model, inliers []Point) (Model, error) {
	if len(inliers) < SampleSize {
		return m, fmt.Errorf("need at least %d inliers but got %d: %w", SampleSize, len(inliers), ErrInsufficientData)
	}
	xx, yy := Points(inliers)
	cc, err := xmath.Fit(xx, yy, Degree)
	if err != nil {
		return m, fmt.Errorf("could not refine model: %w", err)
	}
	refined := NewModel(cc)
	if !refined.Defined() {
		return m, fmt.Errorf("could not refine model %v: %w", refined, ErrDegenerateModel)
	}
	return refined, nil
}

// Refine applies the refiner to the last fit and re-partitions the fitted points against the new model.
// The last fit itself is left untouched, a nil refiner falls back to Refine.
func (f *Fitter) Refine(refine Refiner) (Result, error) {
	if f.last == nil {
		return Result{}, ErrNotFitted
	}
	if refine == nil {
		refine = Refine
	}
	last := *f.last
	model, err := refine(last.Model, last.Inliers)
	if err != nil {
		return Result{}, err
	}
	// inliers first, the relative order within each group is kept
	points := make([]Point, 0, len(last.Inliers)+len(last.Outliers))
	points = append(points, last.Inliers...)
	points = append(points, last.Outliers...)

	inliers, outliers := Partition(model, points, last.Threshold)
	refined := last
	refined.ID = uuid.New().String()
	refined.Model = model
	refined.Inliers = inliers
	refined.Outliers = outliers
	refined.Summary = Summarize(model, inliers)
	return refined, nil
}
