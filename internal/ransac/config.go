package ransac

import "fmt"

const (
	// Degree is the degree of the fitted polynomial.
	Degree = 3
	// SampleSize is the number of points that uniquely determine a model.
	SampleSize = Degree + 1
)

// Config drives the consensus search.
type Config struct {
	// Trials is the number of random minimal samples to try.
	Trials int `json:"trials" yaml:"trials"`
	// Threshold is the max absolute vertical residual for a point to be an inlier.
	Threshold float64 `json:"threshold" yaml:"threshold"`
	// InlierCountThreshold is only used if EarlyExit is enabled.
	InlierCountThreshold int `json:"inlier_count_threshold" yaml:"inlier_count_threshold"`
	// SquaredResidualThreshold is reported against the winning inliers, it never affects the search.
	SquaredResidualThreshold float64 `json:"squared_residual_threshold" yaml:"squared_residual_threshold"`
	// EarlyExit stops the search as soon as InlierCountThreshold inliers are found.
	EarlyExit bool `json:"early_exit" yaml:"early_exit"`
	// SkipDegenerate skips the residual pass for samples with a singular system.
	SkipDegenerate bool `json:"skip_degenerate" yaml:"skip_degenerate"`
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		Trials:                   500,
		Threshold:                10.0,
		InlierCountThreshold:     300,
		SquaredResidualThreshold: 8000000,
	}
}

// Validate checks that the config can drive a fit.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive but was %d: %w", c.Trials, ErrInvalidConfig)
	}
	if !(c.Threshold > 0) {
		return fmt.Errorf("threshold must be positive but was %v: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.InlierCountThreshold < 0 {
		return fmt.Errorf("inlier count threshold must not be negative but was %d: %w", c.InlierCountThreshold, ErrInvalidConfig)
	}
	if c.EarlyExit && c.InlierCountThreshold <= 0 {
		return fmt.Errorf("early exit needs a positive inlier count threshold but was %d: %w", c.InlierCountThreshold, ErrInvalidConfig)
	}
	if c.SquaredResidualThreshold < 0 {
		return fmt.Errorf("squared residual threshold must not be negative but was %v: %w", c.SquaredResidualThreshold, ErrInvalidConfig)
	}
	return nil
}
