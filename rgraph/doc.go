// Package rgraph assembles the indexed factor/edge graph the srmp solver
// runs on, from a cfn.Network and a relaxation.EdgeSet.
//
// Per the design notes: factors and edges are stored in flat, indexed
// arrays rather than as a pointer graph. Each edge carries the stride_B /
// stride_diff offset tables computed once at construction time and an
// owned message table, initialised to zero; each factor carries only the
// indices of its incoming and outgoing edges. The graph's structure is
// immutable after Build; only edge messages are mutated thereafter, by the
// srmp package's sweeps.
package rgraph
