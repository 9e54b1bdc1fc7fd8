package srmp

import "time"

// Default option values, the single source of truth for DefaultOptions.
const (
	DefaultMaxIterations      = uint32(1000)
	DefaultLBEpsilon          = 1e-7
	DefaultProgressWindow     = uint32(5)
	DefaultExtractPrimalEvery = uint32(1)
	DefaultTRWWeighting       = 1.0
)

// MetricsSink receives observability callbacks from a running Solver. A nil
// sink (the default) disables all of it; srmpmetrics provides a Prometheus
// implementation.
type MetricsSink interface {
	// SweepCompleted is called once per forward+backward iteration, after
	// the backward sweep, with the lower bound that sweep computed.
	SweepCompleted(lowerBound float64)

	// SendObserved is called once per SEND operation with its wall-clock
	// duration.
	SendObserved(d time.Duration)
}

// Options configures a Solver's construction-time reweighting and Run's
// stopping conditions.
type Options struct {
	// MaxIterations caps the number of forward+backward sweep pairs. Must
	// be >= 1.
	MaxIterations uint32

	// TimeBudget caps wall-clock time spent in Run. Zero means unlimited.
	TimeBudget time.Duration

	// LBEpsilon is the minimum lower-bound improvement, measured across
	// ProgressWindow iterations, below which Run reports convergence.
	LBEpsilon float64

	// ProgressWindow is the number of trailing iterations the convergence
	// check compares against. Must be >= 1.
	ProgressWindow uint32

	// ExtractPrimalEvery extracts a primal candidate assignment every N
	// iterations (N >= 1). Zero disables primal extraction entirely.
	ExtractPrimalEvery uint32

	// TRWWeighting interpolates the pre-pass reweighting formula between
	// the plain forward/backward in-degree (0.0) and the full TRW-style
	// max(in_total-in_dir, in_dir) term (1.0). Must be within [0, 1].
	TRWWeighting float64

	// Metrics, if non-nil, receives sweep and SEND observability callbacks.
	Metrics MetricsSink
}

// DefaultOptions returns the package's default Options: a 1000-sweep cap,
// no time budget, a progress window of 5 iterations at epsilon 1e-7, primal
// extraction every iteration, and full TRW reweighting.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      DefaultMaxIterations,
		LBEpsilon:          DefaultLBEpsilon,
		ProgressWindow:     DefaultProgressWindow,
		ExtractPrimalEvery: DefaultExtractPrimalEvery,
		TRWWeighting:       DefaultTRWWeighting,
	}
}

func (o Options) validate() error {
	if o.MaxIterations < 1 {
		return ErrInvalidMaxIterations
	}
	if o.ProgressWindow < 1 {
		return ErrInvalidProgressWindow
	}
	if o.TRWWeighting < 0 || o.TRWWeighting > 1 {
		return ErrInvalidWeighting
	}
	return nil
}
