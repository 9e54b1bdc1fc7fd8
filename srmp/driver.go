package srmp

import (
	"context"
	"math"
	"time"
)

// Run performs forward/backward sweeps until one of Options' stopping
// conditions fires: the sweep cap, the time budget, lower-bound
// convergence, or ctx cancellation. It returns the best result observed
// even when it returns a non-nil error: a NumericError from a SEND
// operation aborts the current sweep but the last-known-good lower bound
// and best assignment are still returned.
func (s *Solver) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	res := Result{
		LowerBound: s.initLB,
		BestCost:   math.Inf(1),
		Reason:     ReasonIterations,
	}

	if ctx != nil && ctx.Err() != nil {
		res.Reason = ReasonCancelled
		return res, nil
	}

	lbHistory := []float64{s.initLB}

	for iter := uint32(0); ; iter++ {
		if iter >= s.opts.MaxIterations {
			res.Reason = ReasonIterations
			break
		}
		if s.opts.TimeBudget > 0 && time.Since(start) >= s.opts.TimeBudget {
			res.Reason = ReasonTime
			break
		}
		if ctx != nil {
			select {
			case <-ctx.Done():
				res.Reason = ReasonCancelled
				res.Iterations = int(iter)
				res.LowerBound = lbHistory[len(lbHistory)-1]
				return res, nil
			default:
			}
		}

		extract := s.opts.ExtractPrimalEvery > 0 && iter%s.opts.ExtractPrimalEvery == 0

		var fwdSol []int
		if extract {
			fwdSol = unsetAssignment(s.g.Net.NumVariables())
		}
		if err := s.forwardSweep(fwdSol); err != nil {
			res.Iterations = int(iter)
			res.LowerBound = lbHistory[len(lbHistory)-1]
			return res, err
		}
		if extract {
			s.considerCandidate(&res, fwdSol)
		}

		if ctx != nil {
			select {
			case <-ctx.Done():
				res.Reason = ReasonCancelled
				res.Iterations = int(iter)
				res.LowerBound = lbHistory[len(lbHistory)-1]
				return res, nil
			default:
			}
		}

		var bwdSol []int
		if extract {
			bwdSol = unsetAssignment(s.g.Net.NumVariables())
		}
		lb, err := s.backwardSweep(bwdSol)
		if err != nil {
			res.Iterations = int(iter)
			res.LowerBound = lbHistory[len(lbHistory)-1]
			return res, err
		}
		if extract {
			s.considerCandidate(&res, bwdSol)
		}
		if s.opts.Metrics != nil {
			s.opts.Metrics.SweepCompleted(lb)
		}

		lbHistory = append(lbHistory, lb)
		res.Iterations = int(iter) + 1

		if converged(lbHistory, s.opts.LBEpsilon, s.opts.ProgressWindow) {
			res.Reason = ReasonConvergence
			break
		}
	}

	res.LowerBound = lbHistory[len(lbHistory)-1]
	return res, nil
}

// forwardSweep performs one forward pass over the fixed sequence (spec step
// 4.6): for each factor B, send along every incoming edge classified
// backward, then subtract B's reweighted reparametrization from every
// incoming edge classified forward. If sol is non-nil, it also extracts a
// restricted-minimizer primal candidate for every factor before reweighting.
func (s *Solver) forwardSweep(sol []int) error {
	for _, beta := range s.seq {
		for _, eIdx := range s.g.InEdges[beta] {
			if s.g.Edges[eIdx].IsBW {
				if _, err := s.sendTimed(eIdx); err != nil {
					return err
				}
			}
		}

		theta, err := s.computeTheta(beta)
		if err != nil {
			return err
		}
		if err := theta.CheckFinite(); err != nil {
			return err
		}

		if sol != nil {
			extractFactor(s.g.Net, &s.g.Factors[beta], theta, sol)
		}

		theta.Scale(1.0 / float64(s.wForward[beta]))

		for _, eIdx := range s.g.InEdges[beta] {
			e := &s.g.Edges[eIdx]
			if e.IsFW {
				if err := e.Message.Sub(theta); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// backwardSweep performs one backward pass over the fixed sequence (spec
// step 4.6): for each factor B in reverse, send along every incoming edge
// classified forward or marked as the update-LB edge (accumulating the
// lower bound for the latter), then subtract B's reweighted
// reparametrization from every incoming edge classified backward. If sol is
// non-nil, it also extracts a restricted-minimizer primal candidate for
// every factor before reweighting.
func (s *Solver) backwardSweep(sol []int) (float64, error) {
	lb := s.initLB

	for i := len(s.seq) - 1; i >= 0; i-- {
		beta := s.seq[i]

		for _, eIdx := range s.g.InEdges[beta] {
			e := &s.g.Edges[eIdx]
			if e.IsFW || e.UpdateLB {
				v, err := s.sendTimed(eIdx)
				if err != nil {
					return lb, err
				}
				if e.UpdateLB {
					lb += v
				}
			}
		}

		theta, err := s.computeTheta(beta)
		if err != nil {
			return lb, err
		}
		if err := theta.CheckFinite(); err != nil {
			return lb, err
		}

		if sol != nil {
			extractFactor(s.g.Net, &s.g.Factors[beta], theta, sol)
		}

		theta.Scale(1.0 / float64(s.wBackward[beta]))

		if s.computeBound[beta] && s.wBackward[beta] > 0 {
			lb += theta.Min() * float64(s.wUpdateLB[beta])
		}

		for _, eIdx := range s.g.InEdges[beta] {
			e := &s.g.Edges[eIdx]
			if e.IsBW {
				if err := e.Message.Sub(theta); err != nil {
					return lb, err
				}
			}
		}
	}

	return lb, nil
}

// considerCandidate fills in the variables sol left unset (variables that
// appeared in no sequenced factor): first with the restricted minimizer of
// each factor outside the sequence, taken over its own data, then any still
// unset with label 0. It costs the resulting complete assignment and
// replaces res's best candidate if it improves.
func (s *Solver) considerCandidate(res *Result, sol []int) {
	for i := range s.g.Factors {
		f := &s.g.Factors[i]
		if f.Arity() > 1 && len(s.g.InEdges[i]) == 0 && len(s.g.OutEdges[i]) == 0 {
			extractFactor(s.g.Net, f, s.seeds[i], sol)
		}
	}
	for i, v := range sol {
		if v < 0 {
			sol[i] = 0
		}
	}
	cost := assignmentCost(s.g.Net, sol)
	if cost < res.BestCost {
		res.BestCost = cost
		res.BestAssignment = sol
	}
}

// converged reports whether the lower bound improved by less than eps over
// the trailing window iterations of history. It tolerates small negative
// reversals (floating point noise) the same way it tolerates small positive
// gains: both fall under the eps threshold.
func converged(history []float64, eps float64, window uint32) bool {
	w := int(window)
	if w <= 0 || len(history) <= w {
		return false
	}
	return history[len(history)-1]-history[len(history)-1-w] < eps
}
