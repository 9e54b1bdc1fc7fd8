package ftable_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/srmp/ftable"
	"github.com/katalvlaran/srmp/stride"
	"github.com/stretchr/testify/require"
)

func TestAddSubScale(t *testing.T) {
	a := ftable.FromData([]float64{1, 2, 3})
	b := ftable.FromData([]float64{10, 20, 30})

	require.NoError(t, a.Add(b))
	require.Equal(t, []float64{11, 22, 33}, a.Values)

	require.NoError(t, a.Sub(b))
	require.Equal(t, []float64{1, 2, 3}, a.Values)

	a.Scale(2)
	require.Equal(t, []float64{2, 4, 6}, a.Values)
}

func TestAddShapeMismatch(t *testing.T) {
	a := ftable.New(2)
	b := ftable.New(3)
	require.ErrorIs(t, a.Add(b), ftable.ErrShapeMismatch)
}

func TestMin(t *testing.T) {
	require.Equal(t, -5.0, ftable.FromData([]float64{3, -5, 1}).Min())
}

func TestCheckFinite(t *testing.T) {
	ok := ftable.FromData([]float64{1, math.Inf(1), -2})
	require.NoError(t, ok.CheckFinite())

	bad := ftable.FromData([]float64{1, math.NaN()})
	require.ErrorIs(t, bad.CheckFinite(), ftable.ErrNaN)
}

// A over vars {0,1} with domains {2,3} (K=6); B = {0} (K=2), C = {1} (K=3).
func TestPartialMinAndBroadcastRoundTrip(t *testing.T) {
	aVars, aDom := []int{0, 1}, []int{2, 3}
	bVars := []int{0}

	st, err := stride.Build(aVars, aDom, bVars)
	require.NoError(t, err)
	diff, err := stride.BuildDiff(aVars, aDom, bVars)
	require.NoError(t, err)
	require.NoError(t, stride.VerifyCoverage(6, st, diff))

	// theta laid out row-major over (var0, var1): [ (0,0) (0,1) (0,2) (1,0) (1,1) (1,2) ]
	theta := ftable.FromData([]float64{5, 1, 9, 2, 8, 0})

	out, err := theta.PartialMin(st, diff)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, out.Values) // min(5,1,9)=1; min(2,8,0)=0

	// Broadcasting out back onto a fresh zero theta should place out[b] at
	// every c-offset under b.
	broadcasted := ftable.New(6)
	require.NoError(t, broadcasted.AddBroadcast(out, st, diff))
	require.Equal(t, []float64{1, 1, 1, 0, 0, 0}, broadcasted.Values)

	require.NoError(t, broadcasted.SubBroadcast(out, st, diff))
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0}, broadcasted.Values)
}

func TestPartialMinShapeMismatch(t *testing.T) {
	st := &stride.Table{Values: []int{0, 1}}
	diff := &stride.Table{Values: []int{0}}
	theta := ftable.New(3) // should be 2*1=2
	_, err := theta.PartialMin(st, diff)
	require.ErrorIs(t, err, ftable.ErrShapeMismatch)
}
