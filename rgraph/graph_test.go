package rgraph_test

import (
	"testing"

	"github.com/katalvlaran/srmp/cfn"
	"github.com/katalvlaran/srmp/relaxation"
	"github.com/katalvlaran/srmp/rgraph"
	"github.com/stretchr/testify/require"
)

func buildPairwiseNetwork(t *testing.T) *cfn.DenseNetwork {
	net, err := cfn.NewDenseNetwork([]int{2, 2})
	require.NoError(t, err)
	require.NoError(t, net.AddUnary(0, nil))
	require.NoError(t, net.AddUnary(1, nil))
	require.NoError(t, net.AddFactor([]int{0, 1}, []float64{0, 1, 1, 0}))
	return net
}

func TestBuildWiresEdgesAndAllocatesMessages(t *testing.T) {
	net := buildPairwiseNetwork(t)
	es, err := relaxation.MinimalEdges(net)
	require.NoError(t, err)

	g, err := rgraph.Build(net, es)
	require.NoError(t, err)
	require.Len(t, g.Edges, 2) // pair -> unary(0), pair -> unary(1)

	pairIdx := 2
	require.Len(t, g.OutEdges[pairIdx], 2)
	require.Len(t, g.InEdges[0], 1)
	require.Len(t, g.InEdges[1], 1)

	for _, e := range g.Edges {
		require.Equal(t, 0.0, e.Message.Min()) // freshly allocated, all zero
	}
}

func TestBuildRejectsNonStrictSubsetEdge(t *testing.T) {
	net, err := cfn.NewDenseNetwork([]int{2, 2})
	require.NoError(t, err)
	require.NoError(t, net.AddFactor([]int{0, 1}, nil))
	require.NoError(t, net.AddFactor([]int{0, 1}, nil))

	_, err = rgraph.Build(net, &relaxation.EdgeSet{Edges: []relaxation.Edge{{Super: 0, Sub: 1}}})
	require.ErrorIs(t, err, rgraph.ErrSubsetViolation)
}

func TestFactorSeedCopiesDataOrZeros(t *testing.T) {
	net := buildPairwiseNetwork(t)
	es, err := relaxation.MinimalEdges(net)
	require.NoError(t, err)
	g, err := rgraph.Build(net, es)
	require.NoError(t, err)

	pair := g.Factors[2]
	seed := pair.Seed()
	require.Equal(t, []float64{0, 1, 1, 0}, seed.Values)

	unary := g.Factors[0]
	zeroed := unary.Seed()
	require.Equal(t, []float64{0, 0}, zeroed.Values)
}
