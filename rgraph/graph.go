package rgraph

import (
	"fmt"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/ftable"
	"github.com/katalvlaran/srmp/relaxation"
	"github.com/katalvlaran/srmp/stride"
)

// Factor is a node of the graph: the underlying cfn.Factor plus its cached
// scope and label-space size.
type Factor struct {
	cfn.Factor
	Vars []int
	K    int
}

// Edge is a directed (super -> sub) message-passing edge. Messages are
// owned here, indexed by the sub-factor's labeling, and mutated in place by
// the srmp package.
type Edge struct {
	Super, Sub int

	StrideB    *stride.Table
	StrideDiff *stride.Table
	Message    *ftable.Table

	// IsFW, IsBW and UpdateLB are set by the srmp package's pre-pass (spec
	// step 4.4); they are zero-valued immediately after Build. UpdateLB
	// marks the edge on which the backward sweep first encounters this
	// edge's super-factor, so its contribution to the lower bound is
	// counted exactly once per sweep. Per-factor forward/backward weights
	// live in srmp.Solver, not on the edge.
	IsFW, IsBW, UpdateLB bool
}

// Graph is the indexed factor/edge substrate the srmp solver runs its
// sweeps over.
type Graph struct {
	Net     cfn.Network
	Factors []Factor
	Edges   []Edge

	// InEdges[f] / OutEdges[f] are the indices into Edges of factor f's
	// incoming (Sub==f) and outgoing (Super==f) edges, respectively.
	InEdges  [][]int
	OutEdges [][]int
}

// Build constructs the factor/edge graph for net under the given edge set,
// computing and validating every edge's stride tables and allocating a
// zeroed message table per edge.
func Build(net cfn.Network, edges *relaxation.EdgeSet) (*Graph, error) {
	netFactors := net.Factors()
	factors := make([]Factor, len(netFactors))
	for i, f := range netFactors {
		factors[i] = Factor{Factor: f, Vars: f.Vars(), K: f.K()}
	}

	g := &Graph{
		Net:      net,
		Factors:  factors,
		Edges:    make([]Edge, 0, len(edges.Edges)),
		InEdges:  make([][]int, len(factors)),
		OutEdges: make([][]int, len(factors)),
	}

	for _, re := range edges.Edges {
		if err := g.addEdge(re.Super, re.Sub); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) addEdge(super, sub int) error {
	a, b := g.Factors[super], g.Factors[sub]

	if !strictSubset(b.Vars, a.Vars) {
		return fmt.Errorf("rgraph: edge %d->%d: %w", super, sub, ErrSubsetViolation)
	}

	aDom := domainSizes(g.Net, a.Vars)
	st, err := stride.Build(a.Vars, aDom, b.Vars)
	if err != nil {
		return fmt.Errorf("rgraph: edge %d->%d: stride_B: %w", super, sub, err)
	}
	diff, err := stride.BuildDiff(a.Vars, aDom, b.Vars)
	if err != nil {
		return fmt.Errorf("rgraph: edge %d->%d: stride_diff: %w", super, sub, err)
	}
	if err := stride.VerifyCoverage(a.K, st, diff); err != nil {
		return fmt.Errorf("rgraph: edge %d->%d: %w", super, sub, err)
	}

	edgeIdx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{
		Super:      super,
		Sub:        sub,
		StrideB:    st,
		StrideDiff: diff,
		Message:    ftable.New(b.K),
	})
	g.OutEdges[super] = append(g.OutEdges[super], edgeIdx)
	g.InEdges[sub] = append(g.InEdges[sub], edgeIdx)

	return nil
}

func domainSizes(net cfn.Network, vars []int) []int {
	out := make([]int, len(vars))
	for i, v := range vars {
		out[i] = net.DomainSize(v)
	}
	return out
}

func strictSubset(sub, sup []int) bool {
	if len(sub) >= len(sup) {
		return false
	}
	supSet := make(map[int]bool, len(sup))
	for _, v := range sup {
		supSet[v] = true
	}
	for _, v := range sub {
		if !supSet[v] {
			return false
		}
	}
	return true
}

// Seed returns the factor's reparametrization seed: a fresh Table holding a
// copy of its data table, or a zero-filled Table if the factor carries no
// data (identically zero per the data model).
func (f *Factor) Seed() *ftable.Table {
	if d := f.Factor.Data(); d != nil {
		return ftable.FromData(append([]float64(nil), d...))
	}
	return ftable.New(f.K)
}
