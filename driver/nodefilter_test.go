package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpelleau/hyperclique/driver"
	"github.com/mpelleau/hyperclique/hypergraph"
)

// TestRun_NodeFilterDegree_DropsOnRankKEdgeDegreeNotNeighbourCount builds a
// vertex (5) with only two incident rank-3 edges but three rank-3
// neighbours — a neighbour-count test with threshold k-1 would keep it,
// but its rank-3 edge-degree (2) is below k (3), so the Degree pre-filter
// must drop it and report its two incident edges as their own maximal
// cliques.
func TestRun_NodeFilterDegree_DropsOnRankKEdgeDegreeNotNeighbourCount(t *testing.T) {
	hg := hypergraph.NewHypergraph(5)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))
	require.NoError(t, hg.AddEdge(5, []int{1, 2, 5}))
	require.NoError(t, hg.AddEdge(6, []int{1, 3, 5}))

	opts := driver.DefaultOptions()
	opts.NodeFilter = driver.NodeFilterDegree
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3, 4}))
	assert.True(t, hasClique(result.Cliques, []int{1, 2, 5}))
	assert.True(t, hasClique(result.Cliques, []int{1, 3, 5}))
}
