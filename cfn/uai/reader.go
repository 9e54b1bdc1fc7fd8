package uai

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/srmp/cfn"
)

// ReadModel parses a UAI or UAI-LG model from r into a *cfn.DenseNetwork.
//
// The grammar, in the order tokens are consumed (mirroring the phases of
// the reference reader's state machine: model type, variable count, domain
// sizes, function count, function scopes, then one table per function):
//
//	MARKOV
//	<num_variables>
//	<domain_size_0> ... <domain_size_{n-1}>
//	<num_functions>
//	<arity_0> <var_0_0> ... <var_0_{arity_0-1}>
//	...
//	<table_size_0>
//	<value_0_0> ... <value_0_{table_size_0-1}>
//	...
//
// Whitespace (including newlines) is insignificant between tokens; UAI
// files conventionally one-line-per-field, but this reader does not
// require it.
// lg is accepted for caller-side format bookkeeping only; see the package
// doc comment for why it does not change parsing.
func ReadModel(r io.Reader, lg bool) (*cfn.DenseNetwork, error) {
	_ = lg
	toks := newTokenizer(r)

	modelType, err := toks.next()
	if err != nil {
		return nil, fmt.Errorf("uai: reading model type: %w", err)
	}
	if modelType != "MARKOV" {
		return nil, fmt.Errorf("uai: model type %q: %w", modelType, ErrUnsupportedGraphType)
	}

	numVariables, err := toks.nextInt()
	if err != nil {
		return nil, fmt.Errorf("uai: reading variable count: %w", err)
	}

	domainSizes := make([]int, numVariables)
	for i := range domainSizes {
		domainSizes[i], err = toks.nextInt()
		if err != nil {
			return nil, fmt.Errorf("uai: reading domain size %d: %w", i, err)
		}
	}

	net, err := cfn.NewDenseNetwork(domainSizes)
	if err != nil {
		return nil, fmt.Errorf("uai: %w", err)
	}

	numFunctions, err := toks.nextInt()
	if err != nil {
		return nil, fmt.Errorf("uai: reading function count: %w", err)
	}

	scopes := make([][]int, numFunctions)
	for i := range scopes {
		arity, err := toks.nextInt()
		if err != nil {
			return nil, fmt.Errorf("uai: reading scope of function %d: %w", i, err)
		}
		scope := make([]int, arity)
		for j := range scope {
			scope[j], err = toks.nextInt()
			if err != nil {
				return nil, fmt.Errorf("uai: reading scope of function %d: %w", i, err)
			}
		}
		scopes[i] = scope
	}

	for i, scope := range scopes {
		size, err := toks.nextInt()
		if err != nil {
			return nil, fmt.Errorf("uai: reading table size of function %d: %w", i, err)
		}
		table := make([]float64, size)
		for j := range table {
			table[j], err = toks.nextFloat()
			if err != nil {
				return nil, fmt.Errorf("uai: reading table of function %d: %w", i, err)
			}
		}
		// The UAI format preserves each function's variables in the order
		// declared in the file and enumerates the table relative to that
		// declared order, not an ascending one (original_source's
		// FunctionTable builds its strides the same way); DenseNetwork
		// requires an ascending scope, so permute scope and table together
		// rather than reject a legitimately-ordered file.
		addScope, addTable := scope, table
		if len(scope) > 1 {
			addScope, addTable = sortScope(scope, domainSizes, table)
		}
		if err := net.AddFactor(addScope, addTable); err != nil {
			return nil, fmt.Errorf("uai: adding function %d: %w", i, err)
		}
	}

	return net, nil
}

// sortScope returns vars in ascending order together with data permuted to
// match the new order, so a function declared with its variables out of
// order still lands in DenseNetwork with an equivalent but ascending scope.
// domainSizes is indexed by global variable id. A nil data passes through
// unpermuted (an identically-zero factor has no order to preserve).
func sortScope(vars []int, domainSizes []int, data []float64) ([]int, []float64) {
	n := len(vars)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return vars[order[i]] < vars[order[j]] })

	sorted := make([]int, n)
	for i, oi := range order {
		sorted[i] = vars[oi]
	}
	if data == nil {
		return sorted, nil
	}

	// declStride[i] is the multiplier the file's declared order gives to
	// position i (row-major, last variable fastest); sortedStride is the
	// same computation over the ascending order.
	declStride := make([]int, n)
	acc := 1
	for i := n - 1; i >= 0; i-- {
		declStride[i] = acc
		acc *= domainSizes[vars[i]]
	}
	sortedStride := make([]int, n)
	acc = 1
	for i := n - 1; i >= 0; i-- {
		sortedStride[i] = acc
		acc *= domainSizes[sorted[i]]
	}

	out := make([]float64, len(data))
	for idx := range out {
		rem := idx
		declOffset := 0
		for i := 0; i < n; i++ {
			digit := rem / sortedStride[i]
			rem %= sortedStride[i]
			declOffset += digit * declStride[order[i]]
		}
		out[idx] = data[declOffset]
	}
	return sorted, out
}

// tokenizer is a whitespace-delimited token stream over r, via
// bufio.Scanner's word-splitting mode.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncatedFile
	}
	return t.sc.Text(), nil
}

func (t *tokenizer) nextInt() (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedInteger)
	}
	return v, nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedFloat)
	}
	return v, nil
}
