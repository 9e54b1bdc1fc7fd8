package cfn

import "fmt"

// denseFactor is the reference Factor implementation: a sorted scope plus a
// dense table of K() reals (nil table means identically zero).
type denseFactor struct {
	vars []int
	k    int
	data []float64
}

func (f *denseFactor) Vars() []int     { return f.vars }
func (f *denseFactor) Arity() int      { return len(f.vars) }
func (f *denseFactor) K() int          { return f.k }
func (f *denseFactor) Data() []float64 { return f.data }

// DenseNetwork is an in-memory Network: domain sizes for every variable plus
// a catalog of factors (unary and non-unary), built incrementally.
//
// It mirrors core.Graph's constructor-then-mutate-via-methods style: domain
// sizes are fixed at construction, factors are added one at a time via
// AddFactor/AddUnary, and the zero value is not usable (use NewDenseNetwork).
type DenseNetwork struct {
	domains []int
	factors []Factor

	// unaryIndex[v] is the index into factors of variable v's unary
	// factor, or -1 if none has been added yet. Mirrors the "overwrite
	// unary, append non-unary" policy of the reference implementation this
	// was modeled on (original_source/src/cfn/cost_function_network.rs).
	unaryIndex []int
}

// NewDenseNetwork constructs an empty network with the given per-variable
// domain sizes. Every domainSizes[i] must be >= 1.
func NewDenseNetwork(domainSizes []int) (*DenseNetwork, error) {
	for i, k := range domainSizes {
		if k < 1 {
			return nil, fmt.Errorf("cfn: NewDenseNetwork: variable %d: %w", i, ErrEmptyDomain)
		}
	}

	domains := make([]int, len(domainSizes))
	copy(domains, domainSizes)

	unaryIndex := make([]int, len(domainSizes))
	for i := range unaryIndex {
		unaryIndex[i] = -1
	}

	return &DenseNetwork{
		domains:    domains,
		factors:    make([]Factor, 0, len(domainSizes)),
		unaryIndex: unaryIndex,
	}, nil
}

// NumVariables implements Network.
func (n *DenseNetwork) NumVariables() int { return len(n.domains) }

// DomainSize implements Network.
func (n *DenseNetwork) DomainSize(variable int) int { return n.domains[variable] }

// Factors implements Network.
func (n *DenseNetwork) Factors() []Factor { return n.factors }

// AddUnary sets (or overwrites) the unary factor for variable v. data must
// have length DomainSize(v); a nil data is the identically-zero factor.
func (n *DenseNetwork) AddUnary(v int, data []float64) error {
	if v < 0 || v >= len(n.domains) {
		return fmt.Errorf("cfn: AddUnary: %w", ErrVariableOutOfRange)
	}
	k := n.domains[v]
	if data != nil && len(data) != k {
		return fmt.Errorf("cfn: AddUnary(var=%d): %w", v, ErrTableLength)
	}

	f := &denseFactor{vars: []int{v}, k: k, data: cloneTable(data)}
	if idx := n.unaryIndex[v]; idx >= 0 {
		n.factors[idx] = f
	} else {
		n.unaryIndex[v] = len(n.factors)
		n.factors = append(n.factors, f)
	}
	return nil
}

// AddFactor appends a non-unary factor over vars (sorted, strictly
// increasing, len >= 1). data must have length equal to the product of the
// domain sizes of vars, or be nil for an identically-zero factor. A
// single-variable scope is forwarded to AddUnary.
//
// Non-unary factors are never merged: calling AddFactor repeatedly with
// overlapping scopes produces independent factors, all of which participate
// in the energy sum.
func (n *DenseNetwork) AddFactor(vars []int, data []float64) error {
	if len(vars) == 0 {
		return ErrEmptyScope
	}
	for i, v := range vars {
		if v < 0 || v >= len(n.domains) {
			return fmt.Errorf("cfn: AddFactor: %w", ErrVariableOutOfRange)
		}
		if i > 0 && vars[i-1] >= v {
			return ErrScopeNotSorted
		}
	}

	k := 1
	for _, v := range vars {
		k *= n.domains[v]
	}
	if data != nil && len(data) != k {
		return fmt.Errorf("cfn: AddFactor(vars=%v): %w", vars, ErrTableLength)
	}

	if len(vars) == 1 {
		return n.AddUnary(vars[0], data)
	}

	scope := make([]int, len(vars))
	copy(scope, vars)
	n.factors = append(n.factors, &denseFactor{vars: scope, k: k, data: cloneTable(data)})
	return nil
}

func cloneTable(data []float64) []float64 {
	if data == nil {
		return nil
	}
	out := make([]float64, len(data))
	copy(out, data)
	return out
}
