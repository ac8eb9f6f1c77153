package ransac

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Observer gets notified about the progress of the search.
type Observer interface {
	Trial(degenerate bool)
	Fit(points, inliers int)
}

type voidObserver struct{}

func (v voidObserver) Trial(degenerate bool) {}

func (v voidObserver) Fit(points, inliers int) {}

// Option configures a Fitter.
type Option func(f *Fitter)

// WithConfig sets the search configuration.
func WithConfig(cfg Config) Option {
	return func(f *Fitter) {
		f.config = cfg
	}
}

// WithSource sets the random source the minimal samples are drawn from.
func WithSource(src Source) Option {
	return func(f *Fitter) {
		f.source = src
	}
}

// WithObserver sets the observer of the search.
func WithObserver(o Observer) Option {
	return func(f *Fitter) {
		f.observer = o
	}
}

// Fitter estimates the cubic best supported by a noisy set of points.
// A Fitter is not safe for concurrent use.
type Fitter struct {
	config   Config
	source   Source
	observer Observer
	last     *Result
}

// New creates a new Fitter with the default config and a time seeded source,
// unless overridden by the given options.
func New(opts ...Option) (*Fitter, error) {
	f := &Fitter{
		config:   DefaultConfig(),
		observer: voidObserver{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.source == nil {
		f.source = NewSource(time.Now().UnixNano())
	}
	if err := f.config.Validate(); err != nil {
		return nil, fmt.Errorf("could not create fitter: %w", err)
	}
	return f, nil
}

// Config returns the current config.
func (f *Fitter) Config() Config {
	return f.config
}

// SetConfig replaces the config for the next fits.
func (f *Fitter) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.config = cfg
	return nil
}

// Fit runs the consensus search over the given points.
// The points are not modified.
// A search without any inlier is not an error, the result carries an undefined model.
func (f *Fitter) Fit(points []Point) (Result, error) {
	n := len(points)
	if n < SampleSize {
		return Result{}, fmt.Errorf("need at least %d points but got %d: %w", SampleSize, n, ErrInsufficientData)
	}

	cfg := f.config
	bestCount := 0
	bestModel := undefinedModel()
	bestInliers := make([]Point, 0)
	bestTrial := -1
	degenerate := 0

	buffer := make([]Point, 0, n)
	trials := 0
	var sampled [SampleSize]Point
	for i := 0; i < cfg.Trials; i++ {
		trials++
		for j, idx := range sample(f.source, n) {
			sampled[j] = points[idx]
		}
		model, err := SolveCubic(sampled)
		singular := errors.Is(err, ErrDegenerateModel)
		f.observer.Trial(singular)
		if singular {
			degenerate++
			if cfg.SkipDegenerate {
				continue
			}
		}

		buffer = buffer[:0]
		for _, p := range points {
			if Inlier(model, p, cfg.Threshold) {
				buffer = append(buffer, p)
			}
		}

		if len(buffer) > bestCount {
			bestCount = len(buffer)
			bestModel = model
			bestInliers = append(make([]Point, 0, len(buffer)), buffer...)
			bestTrial = i
			log.Debug().
				Int("trial", i).
				Int("inliers", bestCount).
				Str("model", model.String()).
				Msg("consensus improved")
		}

		if cfg.EarlyExit && bestCount >= cfg.InlierCountThreshold {
			break
		}
	}

	_, outliers := Partition(bestModel, points, cfg.Threshold)

	result := Result{
		ID:         uuid.New().String(),
		Model:      bestModel,
		Inliers:    bestInliers,
		Outliers:   outliers,
		Trials:     trials,
		Degenerate: degenerate,
		BestTrial:  bestTrial,
		Summary:    Summarize(bestModel, bestInliers),
		Threshold:  cfg.Threshold,
		Budget:     cfg.SquaredResidualThreshold,
	}
	last := result.clone()
	f.last = &last
	f.observer.Fit(n, bestCount)

	if !result.Consensus() {
		log.Warn().
			Str("id", result.ID).
			Int("points", n).
			Int("trials", trials).
			Int("degenerate", degenerate).
			Err(ErrNoConsensus).
			Msg("no inliers found")
		return result, nil
	}

	log.Info().
		Str("id", result.ID).
		Int("points", n).
		Int("inliers", len(result.Inliers)).
		Int("trials", trials).
		Int("best-trial", bestTrial).
		Int("degenerate", degenerate).
		Float64("rms", result.Summary.RMS).
		Str("model", result.Model.String()).
		Msg("fit")

	return result, nil
}

// Result returns the last fit result.
func (f *Fitter) Result() (Result, error) {
	if f.last == nil {
		return Result{}, ErrNotFitted
	}
	return f.last.clone(), nil
}

// Model returns the model of the last fit.
func (f *Fitter) Model() (Model, error) {
	if f.last == nil {
		return Model{}, ErrNotFitted
	}
	return f.last.Model, nil
}

// Inliers returns a copy of the inliers of the last fit.
func (f *Fitter) Inliers() ([]Point, error) {
	if f.last == nil {
		return nil, ErrNotFitted
	}
	return append([]Point(nil), f.last.Inliers...), nil
}

// Outliers returns a copy of the outliers of the last fit.
func (f *Fitter) Outliers() ([]Point, error) {
	if f.last == nil {
		return nil, ErrNotFitted
	}
	return append([]Point(nil), f.last.Outliers...), nil
}
