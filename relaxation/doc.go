// Package relaxation builds the directed edge set that the srmp solver's
// message passing runs over: for a Cost Function Network's factors, an
// edge (A -> B) exists whenever scope(B) is a strict subset of scope(A).
//
// MinimalEdges implements the relaxation named in spec: for every non-unary
// factor A, an edge is introduced to every one of A's maximal strict
// sub-factors actually present in the network (a sub-factor B is maximal if
// no other sub-factor of A present in the network strictly contains B's
// scope). RelaxationType exists so future relaxation policies can be added
// without touching the solver, which only requires the strict-subset
// invariant to hold.
package relaxation
