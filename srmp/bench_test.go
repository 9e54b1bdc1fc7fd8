package srmp_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relaxation"
	"github.com/katalvlaran/srmp/srmp"
)

// chainLengths are the synthetic Ising-style chain sizes to benchmark.
var chainLengths = []int{10, 100, 1000}

// sink defeats dead-code elimination.
var sinkResult srmp.Result

// buildChain constructs a binary-variable chain of length n: one pairwise
// factor per consecutive pair plus a unary factor on variable 0, all with
// deterministic random costs, mirroring TestIsingChain's shape at scale.
func buildChain(b *testing.B, n int) *srmp.Solver {
	b.Helper()
	domains := make([]int, n)
	for i := range domains {
		domains[i] = 2
	}
	net, err := cfn.NewDenseNetwork(domains)
	if err != nil {
		b.Fatalf("NewDenseNetwork: %v", err)
	}

	r := rand.New(rand.NewSource(int64(n)))
	if err := net.AddUnary(0, []float64{r.Float64(), r.Float64()}); err != nil {
		b.Fatalf("AddUnary: %v", err)
	}
	for i := 0; i < n-1; i++ {
		pair := []float64{r.Float64(), r.Float64(), r.Float64(), r.Float64()}
		if err := net.AddFactor([]int{i, i + 1}, pair); err != nil {
			b.Fatalf("AddFactor: %v", err)
		}
	}

	edges, err := relaxation.MinimalEdges(net)
	if err != nil {
		b.Fatalf("MinimalEdges: %v", err)
	}
	s, err := srmp.Build(net, edges, srmp.DefaultOptions())
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	return s
}

// BenchmarkRun measures a full forward+backward sweep loop to convergence
// (or the sweep cap) on chains of increasing length, the solver's intended
// hot path.
func BenchmarkRun(b *testing.B) {
	b.ReportAllocs()
	for _, n := range chainLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := buildChain(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := s.Run(context.Background())
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}
