package srmp

import "fmt"

// Reason identifies why Run stopped.
type Reason string

const (
	// ReasonIterations means MaxIterations sweeps were performed.
	ReasonIterations Reason = "iterations"

	// ReasonTime means TimeBudget elapsed.
	ReasonTime Reason = "time"

	// ReasonConvergence means the lower bound stopped improving beyond
	// LBEpsilon across ProgressWindow iterations.
	ReasonConvergence Reason = "convergence"

	// ReasonCancelled means the caller's context was cancelled.
	ReasonCancelled Reason = "cancelled"
)

// Result is Run's output: the final lower bound, the best primal
// assignment extracted along the way (if any), and why the run stopped.
type Result struct {
	// LowerBound is the dual lower bound on the network's minimum energy.
	// It is monotonically non-decreasing across iterations up to floating
	// point noise smaller than LBEpsilon.
	LowerBound float64

	// BestCost is the energy of BestAssignment, or +Inf if no primal
	// assignment was ever extracted.
	BestCost float64

	// BestAssignment is the lowest-cost complete labeling found, one entry
	// per variable, or nil if ExtractPrimalEvery was 0 or Run stopped
	// before a first extraction.
	BestAssignment []int

	// Iterations is the number of forward+backward sweep pairs performed.
	Iterations int

	// Reason identifies which stopping condition fired.
	Reason Reason
}

func (r Result) String() string {
	return fmt.Sprintf("srmp.Result{LB: %g, BestCost: %g, Iterations: %d, Reason: %s}",
		r.LowerBound, r.BestCost, r.Iterations, r.Reason)
}
