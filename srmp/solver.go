package srmp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/ftable"
	"github.com/katalvlaran/srmp/relaxation"
	"github.com/katalvlaran/srmp/rgraph"
)

// Solver holds a graph fixed at Build time plus the pre-pass results
// (sequence, edge classification, reweighting, initial lower bound) and is
// ready to Run. A Solver is not safe for concurrent use; each Run call must
// complete (or be cancelled) before the next begins.
type Solver struct {
	g    *rgraph.Graph
	opts Options

	seq          []int
	computeBound []bool
	wForward     []int
	wBackward    []int
	wUpdateLB    []int
	initLB       float64

	seeds []*ftable.Table
}

// Build constructs the factor/edge graph for net under edges, validates
// opts, and runs the one-time sequencing/classification/reweighting
// pre-pass. The returned Solver is ready for Run.
func Build(net cfn.Network, edges *relaxation.EdgeSet, opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("srmp: Build: %w", err)
	}

	g, err := rgraph.Build(net, edges)
	if err != nil {
		return nil, fmt.Errorf("srmp: Build: %w", err)
	}

	seeds := make([]*ftable.Table, len(g.Factors))
	for i, f := range g.Factors {
		seeds[i] = f.Seed()
	}

	seq, computeBound, wForward, wBackward, wUpdateLB, initLB := prepass(g, opts.TRWWeighting)

	return &Solver{
		g:            g,
		opts:         opts,
		seq:          seq,
		computeBound: computeBound,
		wForward:     wForward,
		wBackward:    wBackward,
		wUpdateLB:    wUpdateLB,
		initLB:       initLB,
		seeds:        seeds,
	}, nil
}

// computeTheta forms factor alpha's current reparametrization: its seed
// data plus every incoming message, minus every outgoing message.
func (s *Solver) computeTheta(alpha int) (*ftable.Table, error) {
	theta := s.seeds[alpha].Clone()
	for _, eIdx := range s.g.InEdges[alpha] {
		e := &s.g.Edges[eIdx]
		if err := theta.Add(e.Message); err != nil {
			return nil, fmt.Errorf("srmp: computeTheta(%d): incoming: %w", alpha, err)
		}
	}
	for _, eIdx := range s.g.OutEdges[alpha] {
		e := &s.g.Edges[eIdx]
		if err := theta.SubBroadcast(e.Message, e.StrideB, e.StrideDiff); err != nil {
			return nil, fmt.Errorf("srmp: computeTheta(%d): outgoing: %w", alpha, err)
		}
	}
	return theta, nil
}

// send performs the SEND operation along edge eIdx: it forms the
// super-factor's current reparametrization without this edge's own message,
// partially minimizes it down onto the sub-factor's label space, and
// overwrites the edge's message with the result shifted so its minimum entry
// is 0. It returns the amount removed by that shift.
func (s *Solver) send(eIdx int) (float64, error) {
	e := &s.g.Edges[eIdx]

	theta, err := s.computeTheta(e.Super)
	if err != nil {
		return 0, err
	}
	if err := theta.CheckFinite(); err != nil {
		return 0, fmt.Errorf("srmp: send(edge %d->%d): %w", e.Super, e.Sub, err)
	}

	if err := theta.AddBroadcast(e.Message, e.StrideB, e.StrideDiff); err != nil {
		return 0, fmt.Errorf("srmp: send(edge %d->%d): %w", e.Super, e.Sub, err)
	}

	m, err := theta.PartialMin(e.StrideB, e.StrideDiff)
	if err != nil {
		return 0, fmt.Errorf("srmp: send(edge %d->%d): %w", e.Super, e.Sub, err)
	}
	delta := m.Min()
	for i := range m.Values {
		m.Values[i] -= delta
	}
	e.Message = m

	return delta, nil
}

// sendTimed wraps send with a MetricsSink observation, when one is
// configured.
func (s *Solver) sendTimed(eIdx int) (float64, error) {
	if s.opts.Metrics == nil {
		return s.send(eIdx)
	}
	start := time.Now()
	v, err := s.send(eIdx)
	s.opts.Metrics.SendObserved(time.Since(start))
	return v, err
}
