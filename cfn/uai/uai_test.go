package uai_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/cfn/uai"
	"github.com/katalvlaran/srmp/srmp"
	"github.com/stretchr/testify/require"
)

const sampleModel = `MARKOV
3
2 2 3
2
1 0
2 0 2

2
1 0
6
0 1 2 3 4 5
`

func TestReadModelParsesHeaderScopesAndTables(t *testing.T) {
	net, err := uai.ReadModel(strings.NewReader(sampleModel), false)
	require.NoError(t, err)

	require.Equal(t, 3, net.NumVariables())
	require.Equal(t, 2, net.DomainSize(0))
	require.Equal(t, 2, net.DomainSize(1))
	require.Equal(t, 3, net.DomainSize(2))

	factors := net.Factors()
	require.Len(t, factors, 2)
	require.Equal(t, []int{0}, factors[0].Vars())
	require.Equal(t, []float64{1, 0}, factors[0].Data())
	require.Equal(t, []int{0, 2}, factors[1].Vars())
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, factors[1].Data())
}

func TestWriteModelThenReadModelRoundTrips(t *testing.T) {
	net, err := cfn.NewDenseNetwork([]int{2, 3})
	require.NoError(t, err)
	require.NoError(t, net.AddUnary(0, []float64{0.5, 1.5}))
	require.NoError(t, net.AddFactor([]int{0, 1}, []float64{0, 1, 2, 3, 4, 5}))

	var buf strings.Builder
	require.NoError(t, uai.WriteModel(&buf, net, false))

	readBack, err := uai.ReadModel(strings.NewReader(buf.String()), false)
	require.NoError(t, err)

	require.Equal(t, net.NumVariables(), readBack.NumVariables())
	for i := 0; i < net.NumVariables(); i++ {
		require.Equal(t, net.DomainSize(i), readBack.DomainSize(i))
	}
	require.Len(t, readBack.Factors(), len(net.Factors()))
	for i, f := range net.Factors() {
		require.Equal(t, f.Vars(), readBack.Factors()[i].Vars())
		require.Equal(t, f.Data(), readBack.Factors()[i].Data())
	}
}

// declaredOutOfOrderModel declares its one binary function over variables
// [2, 0] (domain sizes 3 and 2), out of ascending order, with the table
// enumerated relative to that declared order (var0 fastest, since it is
// declared last) as the UAI format and original_source's FunctionTable both
// require.
const declaredOutOfOrderModel = `MARKOV
3
2 2 3
1
2 2 0
6
0 1 2 3 4 5
`

func TestReadModelSortsOutOfOrderScope(t *testing.T) {
	net, err := uai.ReadModel(strings.NewReader(declaredOutOfOrderModel), false)
	require.NoError(t, err)

	factors := net.Factors()
	require.Len(t, factors, 1)
	require.Equal(t, []int{0, 2}, factors[0].Vars())
	require.Equal(t, []float64{0, 2, 4, 1, 3, 5}, factors[0].Data())
}

func TestReadModelRejectsNonMarkovType(t *testing.T) {
	_, err := uai.ReadModel(strings.NewReader("BAYES\n1\n2\n0\n"), false)
	require.ErrorIs(t, err, uai.ErrUnsupportedGraphType)
}

func TestReadModelRejectsTruncatedFile(t *testing.T) {
	_, err := uai.ReadModel(strings.NewReader("MARKOV\n3\n"), false)
	require.ErrorIs(t, err, uai.ErrTruncatedFile)
}

func TestWriteAnsEmitsExpectedLayout(t *testing.T) {
	res := srmp.Result{
		LowerBound:     1.5,
		BestCost:       2.0,
		BestAssignment: []int{1, 0, 2},
		Iterations:     7,
		Reason:         srmp.ReasonConvergence,
	}

	var buf strings.Builder
	require.NoError(t, uai.WriteAns(&buf, res))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "# srmp-solve v"+uai.FormatVersion.String(), lines[0])
	require.Equal(t, []string{"7", "1.5", "2", "3", "1", "0", "2"}, lines[1:])
}
