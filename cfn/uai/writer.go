package uai

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/srmp"
)

// WriteModel emits net in UAI/UAI-LG model format to w. lg is accepted for
// caller-side format bookkeeping only; see the package doc comment for why
// it does not change the values written.
func WriteModel(w io.Writer, net cfn.Network, lg bool) error {
	_ = lg
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "MARKOV")

	n := net.NumVariables()
	fmt.Fprintln(bw, n)

	domains := make([]string, n)
	for i := 0; i < n; i++ {
		domains[i] = strconv.Itoa(net.DomainSize(i))
	}
	fmt.Fprintln(bw, strings.Join(domains, " "))

	factors := net.Factors()
	fmt.Fprintln(bw, len(factors))

	for _, f := range factors {
		vars := f.Vars()
		fields := make([]string, len(vars)+1)
		fields[0] = strconv.Itoa(len(vars))
		for i, v := range vars {
			fields[i+1] = strconv.Itoa(v)
		}
		fmt.Fprintln(bw, strings.Join(fields, " "))
	}

	for _, f := range factors {
		data := f.Data()
		if data == nil {
			data = make([]float64, f.K())
		}
		fmt.Fprintln(bw, f.K())

		values := make([]string, len(data))
		for i, v := range data {
			values[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(bw, strings.Join(values, " "))
	}

	return bw.Flush()
}

// WriteAns emits the solver's .ans result format to w: a "# srmp-solve vX.Y.Z"
// header comment line, then the iteration count, the lower bound, the best
// cost, the number of variables, then one label per line.
//
// This format is this repository's own (the reference implementation this
// was grounded on had no equivalent writer); it follows the shape spec.md
// §6 describes for the I/O layer's output and the conventional
// one-value-per-line layout of UAI-competition solution files.
func WriteAns(w io.Writer, res srmp.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# srmp-solve v%s\n", FormatVersion)
	fmt.Fprintln(bw, res.Iterations)
	fmt.Fprintln(bw, strconv.FormatFloat(res.LowerBound, 'g', -1, 64))
	fmt.Fprintln(bw, strconv.FormatFloat(res.BestCost, 'g', -1, 64))
	fmt.Fprintln(bw, len(res.BestAssignment))
	for _, v := range res.BestAssignment {
		fmt.Fprintln(bw, v)
	}

	return bw.Flush()
}
