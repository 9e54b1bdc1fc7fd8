package relaxation

import "github.com/katalvlaran/srmp/cfn"

// Edge is a directed (super-factor -> sub-factor) pair, identified by the
// indices of both factors within the source Network's Factors() slice.
type Edge struct {
	Super int
	Sub   int
}

// EdgeSet is the output of a relaxation policy: a set of edges satisfying
// the subset invariant scope(Sub) ⊊ scope(Super) for every edge.
type EdgeSet struct {
	Edges []Edge
}

// RelaxationType identifies a relaxation policy. MinimalEdges is the only
// implementation; the interface exists so additional policies can be added
// without the solver depending on a concrete type.
type RelaxationType interface {
	Build(net cfn.Network) (*EdgeSet, error)
}

// MinimalEdgesRelaxation implements RelaxationType via MinimalEdges.
type MinimalEdgesRelaxation struct{}

// Build implements RelaxationType.
func (MinimalEdgesRelaxation) Build(net cfn.Network) (*EdgeSet, error) {
	return MinimalEdges(net)
}

// MinimalEdges introduces, for each non-unary factor A, one edge to every
// maximal strict sub-factor of A present in net: a factor B with
// vars(B) ⊊ vars(A) such that no other factor B' present in net satisfies
// vars(B) ⊊ vars(B') ⊊ vars(A) (B' itself strict-subset of A).
//
// Complexity: O(F^2 * V) to collect candidates plus O(C^2 * V) per factor
// for the maximality check over its C candidates (O(F^3 * V) worst case),
// for F factors of average arity V; fine for the factor counts this solver
// targets (dense-table CFNs, not giant factor
// graphs).
func MinimalEdges(net cfn.Network) (*EdgeSet, error) {
	factors := net.Factors()
	scopes := make([]map[int]bool, len(factors))
	for i, f := range factors {
		scopes[i] = toSet(f.Vars())
	}

	var edges []Edge
	for ai, a := range factors {
		if a.Arity() <= 1 {
			continue
		}

		var candidates []int
		for bi := range factors {
			if bi == ai {
				continue
			}
			if isStrictSubset(scopes[bi], scopes[ai]) {
				candidates = append(candidates, bi)
			}
		}

		for _, bi := range candidates {
			maximal := true
			for _, bi2 := range candidates {
				if bi2 == bi {
					continue
				}
				if isStrictSubset(scopes[bi], scopes[bi2]) {
					maximal = false
					break
				}
			}
			if maximal {
				edges = append(edges, Edge{Super: ai, Sub: bi})
			}
		}
	}

	return &EdgeSet{Edges: edges}, nil
}

func toSet(vars []int) map[int]bool {
	set := make(map[int]bool, len(vars))
	for _, v := range vars {
		set[v] = true
	}
	return set
}

// isStrictSubset reports whether every key of sub is in sup and sub has
// strictly fewer elements than sup.
func isStrictSubset(sub, sup map[int]bool) bool {
	if len(sub) >= len(sup) {
		return false
	}
	for v := range sub {
		if !sup[v] {
			return false
		}
	}
	return true
}
