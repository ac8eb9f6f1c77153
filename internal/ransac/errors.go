package ransac

import "errors"

var (
	// ErrInsufficientData is returned when there are not enough points for a minimal sample.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrDegenerateModel marks a minimal sample whose system has no unique solution.
	// It is advisory, such a sample never wins the consensus.
	ErrDegenerateModel = errors.New("degenerate model")
	// ErrNoConsensus marks a fit where no trial produced any inlier.
	ErrNoConsensus = errors.New("no consensus found")
	// ErrNotFitted is returned by the fitter accessors before the first fit.
	ErrNotFitted = errors.New("not fitted")
	// ErrInvalidConfig is returned for configurations that cannot drive a fit.
	ErrInvalidConfig = errors.New("invalid config")
)
