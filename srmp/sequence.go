package srmp

import (
	"math"
	"sort"

	"github.com/katalvlaran/srmp/rgraph"
)

// prepass runs the one-time construction steps over g: it fixes the factor
// sequence, classifies every edge as forward and/or backward (and marks the
// edge, if any, on which each factor is first reached by the backward
// sweep), derives per-factor reweighting, and sums the initial lower-bound
// contribution of factors that sit outside the sequence entirely.
//
// It mutates every edge of g in place (IsFW, IsBW, UpdateLB) and returns the
// fixed sequence, the per-factor compute-bound and reweighting tables, and
// the initial lower bound.
func prepass(g *rgraph.Graph, trwWeighting float64) (seq []int, computeBound []bool, wForward, wBackward, wUpdateLB []int, initLB float64) {
	n := len(g.Factors)

	// Step 1: factors with neither incoming nor outgoing edges sit outside
	// the message-passing graph entirely; their minimum contributes
	// directly to the lower bound.
	for i, f := range g.Factors {
		if f.Arity() > 1 && len(g.InEdges[i]) == 0 && len(g.OutEdges[i]) == 0 {
			initLB += f.Seed().Min()
		}
	}

	// Step 2: the sequence is every unary factor (ordered by variable
	// index) followed by every non-unary factor with >= 1 incoming edge
	// (in factor-array order).
	type unaryEntry struct{ v, idx int }
	var unaries []unaryEntry
	for i, f := range g.Factors {
		if f.Arity() == 1 {
			unaries = append(unaries, unaryEntry{f.Vars[0], i})
		}
	}
	sort.Slice(unaries, func(i, j int) bool { return unaries[i].v < unaries[j].v })
	for _, u := range unaries {
		seq = append(seq, u.idx)
	}
	for i, f := range g.Factors {
		if f.Arity() > 1 && len(g.InEdges[i]) > 0 {
			seq = append(seq, i)
		}
	}

	// Step 3: forward pass over the sequence marks backward edges and, per
	// factor, whether it is reached for the first time here (compute_bound,
	// also the preliminary node_is_update_lb).
	computeBound = make([]bool, n)
	seen1 := make([]bool, n)
	for _, alpha := range seq {
		if seen1[alpha] && g.Factors[alpha].Arity() > 1 {
			computeBound[alpha] = false
		} else {
			computeBound[alpha] = true
			seen1[alpha] = true
		}
		for _, eIdx := range g.InEdges[alpha] {
			e := &g.Edges[eIdx]
			beta := e.Super
			e.UpdateLB = !seen1[beta]
			if seen1[beta] {
				e.IsBW = true
			} else {
				e.IsBW = false
				seen1[beta] = true
			}
		}
	}

	// Step 4: reverse pass over the sequence marks forward edges.
	seen2 := make([]bool, n)
	for i := len(seq) - 1; i >= 0; i-- {
		alpha := seq[i]
		seen2[alpha] = true
		for _, eIdx := range g.InEdges[alpha] {
			e := &g.Edges[eIdx]
			beta := e.Super
			if seen2[beta] {
				e.IsFW = true
			} else {
				e.IsFW = false
				seen2[beta] = true
			}
		}
	}

	// Step 5: per-factor forward/backward weights, interpolated by
	// trwWeighting between the plain in-degree (0.0) and the TRW-style
	// max(in_total-in_dir, in_dir) term (1.0).
	posInSeq := make(map[int]int, len(seq))
	for i, f := range seq {
		posInSeq[f] = i
	}

	wForward = make([]int, n)
	wBackward = make([]int, n)
	wUpdateLB = make([]int, n)

	for pos, alpha := range seq {
		var outFwd, outBwd int
		for _, eIdx := range g.OutEdges[alpha] {
			if posInSeq[g.Edges[eIdx].Sub] > pos {
				outFwd++
			} else {
				outBwd++
			}
		}

		var inFwd, inBwd, inTotal int
		for _, eIdx := range g.InEdges[alpha] {
			e := &g.Edges[eIdx]
			inTotal++
			if e.IsFW {
				inFwd++
			}
			if e.IsBW {
				inBwd++
			}
		}

		wf := interpolate(inFwd, inTotal-inFwd, trwWeighting) + outFwd
		if wf == 0 {
			wf = 1
		}
		wb := interpolate(inBwd, inTotal-inBwd, trwWeighting) + outBwd
		if wb == 0 {
			wb = 1
		}

		wForward[alpha] = wf
		wBackward[alpha] = wb
		wUpdateLB[alpha] = wb - inBwd
	}

	return seq, computeBound, wForward, wBackward, wUpdateLB, initLB
}

// interpolate blends the plain in-direction count against the TRW-style
// max(inDir, inOther) term and rounds to the nearest integer weight.
func interpolate(inDir, inOther int, trwWeighting float64) int {
	maxTerm := inDir
	if inOther > maxTerm {
		maxTerm = inOther
	}
	v := (1-trwWeighting)*float64(inDir) + trwWeighting*float64(maxTerm)
	return int(math.Round(v))
}
