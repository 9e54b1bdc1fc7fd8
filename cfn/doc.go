// Package cfn defines the Cost Function Network abstraction consumed by the
// srmp solver: a finite set of integer-domain variables plus a collection of
// real-valued factors (cost functions) over subsets of those variables.
//
// The package exposes the abstraction as two small interfaces, Network and
// Factor, so that callers may plug in their own storage (sparse factors,
// memory-mapped tables, generated-on-the-fly Potts factors, ...) without the
// solver ever depending on a concrete representation. DenseNetwork is the
// reference, in-memory implementation used by tests, the UAI reader, and the
// cmd/srmpsolve driver.
//
// Labelings of a factor are encoded as a single integer in [0, K) using the
// lexicographic stride convention in which the last variable in the sorted
// scope varies fastest (see the srmp/stride packages for the index algebra).
package cfn
