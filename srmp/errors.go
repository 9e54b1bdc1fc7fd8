package srmp

import "errors"

// Sentinel configuration errors, returned by Build when Options fails
// validation. They are never returned once a Solver has started running.
var (
	// ErrInvalidMaxIterations indicates Options.MaxIterations was <= 0.
	ErrInvalidMaxIterations = errors.New("srmp: max iterations must be >= 1")

	// ErrInvalidProgressWindow indicates Options.ProgressWindow was <= 0.
	ErrInvalidProgressWindow = errors.New("srmp: progress window must be >= 1")

	// ErrInvalidWeighting indicates Options.TRWWeighting was outside [0,1].
	ErrInvalidWeighting = errors.New("srmp: trw weighting must be within [0, 1]")
)
