package cfn

import "errors"

// Sentinel errors for the cfn package.
var (
	// ErrEmptyDomain indicates a variable was declared with domain size < 1.
	ErrEmptyDomain = errors.New("cfn: variable domain size must be >= 1")

	// ErrVariableOutOfRange indicates a factor referenced a variable index
	// outside [0, NumVariables()).
	ErrVariableOutOfRange = errors.New("cfn: variable index out of range")

	// ErrScopeNotSorted indicates a factor's variable scope was not strictly
	// increasing, violating the lexicographic stride convention.
	ErrScopeNotSorted = errors.New("cfn: factor scope must be sorted and distinct")

	// ErrEmptyScope indicates a factor was declared over zero variables.
	ErrEmptyScope = errors.New("cfn: factor scope must be non-empty")

	// ErrTableLength indicates a factor's data table length does not equal
	// the product of its scope's domain sizes.
	ErrTableLength = errors.New("cfn: data table length does not match K(A)")
)

// Network is the abstraction the srmp solver consumes: a finite set of
// integer-domain variables plus a collection of factors. Implementations are
// read-only with respect to Data(); mutation (if any) is confined to the
// owner of the concrete type.
type Network interface {
	// NumVariables returns the number of variables N. Variables are indexed
	// [0, N).
	NumVariables() int

	// DomainSize returns the domain size K_i > 0 of variable i.
	DomainSize(variable int) int

	// Factors returns every factor in the network, unary and non-unary, in
	// a stable, implementation-chosen order. Callers must not mutate the
	// returned slice's backing Factor values.
	Factors() []Factor
}

// Factor is a single cost function (factor) of a Network: a dense,
// real-valued table over the labelings of a subset of variables.
type Factor interface {
	// Vars returns the sorted, strictly increasing tuple of variable
	// indices in this factor's scope.
	Vars() []int

	// Arity returns len(Vars()).
	Arity() int

	// K returns the size of this factor's label space: the product of
	// DomainSize(v) over v in Vars().
	K() int

	// Data returns the factor's dense table of K() reals, or nil if the
	// factor is identically zero. Callers must treat the returned slice as
	// read-only.
	Data() []float64
}
