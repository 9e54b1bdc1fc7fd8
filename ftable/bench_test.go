package ftable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/srmp/ftable"
	"github.com/katalvlaran/srmp/stride"
)

// benchArities are the super-factor arities to benchmark PartialMin over,
// each split evenly between the sub-factor's scope and the difference scope.
var benchArities = []int{4, 8, 12}

// sink defeats dead-code elimination across the benchmarks below.
var (
	sinkTable *ftable.Table
	sinkF     float64
)

// buildStrideSplit builds a super-factor over arity variables with domain
// size 2 each, split evenly into a sub-factor's vars (the first half) and a
// difference scope (the second half), and returns the resulting stride_B /
// stride_diff pair plus the super-factor's table size.
func buildStrideSplit(b *testing.B, arity int) (*stride.Table, *stride.Table, int) {
	b.Helper()
	aVars := make([]int, arity)
	aDom := make([]int, arity)
	for i := range aVars {
		aVars[i] = i
		aDom[i] = 2
	}
	bVars := aVars[:arity/2]

	st, err := stride.Build(aVars, aDom, bVars)
	if err != nil {
		b.Fatalf("stride.Build: %v", err)
	}
	diff, err := stride.BuildDiff(aVars, aDom, bVars)
	if err != nil {
		b.Fatalf("stride.BuildDiff: %v", err)
	}
	return st, diff, 1 << arity
}

// BenchmarkPartialMin measures the SEND operation's core reduction: folding
// a super-factor's reparametrization down onto a sub-factor's label space.
func BenchmarkPartialMin(b *testing.B) {
	b.ReportAllocs()
	for _, arity := range benchArities {
		b.Run(fmt.Sprintf("arity=%d", arity), func(b *testing.B) {
			st, diff, k := buildStrideSplit(b, arity)
			r := rand.New(rand.NewSource(int64(arity)))
			values := make([]float64, k)
			for i := range values {
				values[i] = r.Float64()
			}
			theta := ftable.FromData(values)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := theta.PartialMin(st, diff)
				if err != nil {
					b.Fatal(err)
				}
				sinkTable = out
			}
		})
	}
}

// BenchmarkAddBroadcast measures the reparametrization-forming step
// (computeTheta's SubBroadcast, and send's AddBroadcast of the edge's own
// message) that every sweep runs once per outgoing edge of every visited
// factor.
func BenchmarkAddBroadcast(b *testing.B) {
	b.ReportAllocs()
	for _, arity := range benchArities {
		b.Run(fmt.Sprintf("arity=%d", arity), func(b *testing.B) {
			st, diff, k := buildStrideSplit(b, arity)
			theta := ftable.New(k)
			msg := ftable.New(st.Len())
			r := rand.New(rand.NewSource(int64(arity)))
			for i := range msg.Values {
				msg.Values[i] = r.Float64()
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := theta.AddBroadcast(msg, st, diff); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMin measures the min-reduction used to read off a SEND's bound
// contribution and a factor's isolated initial-LB seed.
func BenchmarkMin(b *testing.B) {
	b.ReportAllocs()
	for _, arity := range benchArities {
		b.Run(fmt.Sprintf("arity=%d", arity), func(b *testing.B) {
			k := 1 << arity
			r := rand.New(rand.NewSource(int64(arity)))
			values := make([]float64, k)
			for i := range values {
				values[i] = r.Float64()
			}
			t := ftable.FromData(values)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = t.Min()
			}
		})
	}
}
