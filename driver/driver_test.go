package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpelleau/hyperclique/driver"
	"github.com/mpelleau/hyperclique/filter"
	"github.com/mpelleau/hyperclique/hypergraph"
	"github.com/mpelleau/hyperclique/ordering"
	"github.com/mpelleau/hyperclique/search"
)

func hasClique(cliques [][]int, want []int) bool {
	for _, c := range cliques {
		if assert.ObjectsAreEqual(c, want) {
			return true
		}
	}

	return false
}

// TestRun_S1_TrivialSingleEdge covers spec.md scenario S1: a single
// rank-3 edge with no superset is trivially its own maximal hyperclique.
func TestRun_S1_TrivialSingleEdge(t *testing.T) {
	hg := hypergraph.NewHypergraph(3)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))

	opts := driver.DefaultOptions()
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3}))
	assert.False(t, result.TimedOut)
}

// TestRun_S2_K4Hyperclique covers spec.md scenario S2: every rank-3
// triple of 4 vertices present collapses to one maximal hyperclique.
func TestRun_S2_K4Hyperclique(t *testing.T) {
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))

	opts := driver.DefaultOptions()
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3, 4}))
	for _, c := range result.Cliques {
		assert.NotEqual(t, []int{1, 2, 3}, c, "the K4 subsumes every one of its own triples")
	}
}

// TestRun_S4_DisjointHypercliques covers spec.md scenario S4: two
// disjoint rank-3 K4s each surface as their own maximal hyperclique.
func TestRun_S4_DisjointHypercliques(t *testing.T) {
	hg := hypergraph.NewHypergraph(8)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))
	require.NoError(t, hg.AddEdge(5, []int{5, 6, 7}))
	require.NoError(t, hg.AddEdge(6, []int{5, 6, 8}))
	require.NoError(t, hg.AddEdge(7, []int{5, 7, 8}))
	require.NoError(t, hg.AddEdge(8, []int{6, 7, 8}))

	opts := driver.DefaultOptions()
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3, 4}))
	assert.True(t, hasClique(result.Cliques, []int{5, 6, 7, 8}))
}

// TestRun_S5_FindMax covers spec.md scenario S5: FindMax mode reports
// only the largest hyperclique for a rank.
func TestRun_S5_FindMax(t *testing.T) {
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))

	opts := driver.DefaultOptions()
	opts.Mode = search.FindMax
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	require.Len(t, result.Cliques, 1)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, result.Cliques[0])
}

// TestRun_S6_NearMiss covers spec.md scenario S6: a K4 missing one of
// its four triples yields no rank-3 hyperclique larger than the
// triangles actually present.
func TestRun_S6_NearMiss(t *testing.T) {
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	// edge {2,3,4} is missing: {1,2,3,4} is no longer a rank-3 hyperclique.

	opts := driver.DefaultOptions()
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.False(t, hasClique(result.Cliques, []int{1, 2, 3, 4}))
	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3}))
	assert.True(t, hasClique(result.Cliques, []int{1, 2, 4}))
	assert.True(t, hasClique(result.Cliques, []int{1, 3, 4}))
}

func TestRun_MixedRanks(t *testing.T) {
	hg := hypergraph.NewHypergraph(5)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3, 4})) // rank 4
	require.NoError(t, hg.AddEdge(2, []int{1, 5}))       // rank 2, disjoint-ish

	opts := driver.DefaultOptions()
	opts.MinRank = 2
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	assert.True(t, hasClique(result.Cliques, []int{1, 2, 3, 4}))
	assert.True(t, hasClique(result.Cliques, []int{1, 5}))

	ranksSeen := make(map[int]bool)
	for _, s := range result.Stats {
		ranksSeen[s.Rank] = true
	}
	assert.True(t, ranksSeen[4])
	assert.True(t, ranksSeen[2])
}

func TestOptions_Validate_RejectsBadMinRank(t *testing.T) {
	hg := hypergraph.NewHypergraph(3)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))

	opts := driver.DefaultOptions()
	opts.MinRank = 1
	assert.ErrorIs(t, opts.Validate(hg), driver.ErrMinRankTooSmall)
}

func TestOptions_Validate_RejectsNegativeTimeout(t *testing.T) {
	hg := hypergraph.NewHypergraph(3)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))

	opts := driver.DefaultOptions()
	opts.Timeout = -time.Second
	assert.ErrorIs(t, opts.Validate(hg), driver.ErrNegativeTimeout)
}

func TestOptions_Validate_RejectsBloomAboveVertexLimit(t *testing.T) {
	hg := hypergraph.NewHypergraph(filter.MaxBloomVertices + 1)
	vs := make([]int, filter.MaxBloomVertices+1)
	for i := range vs {
		vs[i] = i + 1
	}
	require.NoError(t, hg.AddEdge(1, vs))

	opts := driver.DefaultOptions()
	opts.Filter = filter.Bloom
	assert.ErrorIs(t, opts.Validate(hg), driver.ErrBloomUnsafe)
}

func TestRun_RejectsInvalidOptions(t *testing.T) {
	hg := hypergraph.NewHypergraph(3)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))

	opts := driver.DefaultOptions()
	opts.MinRank = 0
	_, err := driver.Run(hg, opts)
	assert.ErrorIs(t, err, driver.ErrMinRankTooSmall)
}

func TestRun_EdgeIDsOf_ReturnsConstituentEdges(t *testing.T) {
	hg := hypergraph.NewHypergraph(3)
	require.NoError(t, hg.AddEdge(7, []int{1, 2, 3}))

	opts := driver.DefaultOptions()
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)

	ids := result.EdgeIDsOf([]int{1, 2, 3})
	_, ok := ids[7]
	assert.True(t, ok)
}

func TestRun_Timeout_SetsTimedOutAndStillReturnsPartialResults(t *testing.T) {
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))

	opts := driver.DefaultOptions()
	opts.Timeout = time.Nanosecond
	time.Sleep(time.Millisecond)
	result, err := driver.Run(hg, opts)
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
}

func TestRun_AllVariantsAgreeOnK4(t *testing.T) {
	variants := []search.Variant{search.HBK, search.HybridHBK, search.CEHBK, search.NonUniform}
	for _, v := range variants {
		hg := hypergraph.NewHypergraph(4)
		require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
		require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
		require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
		require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))

		opts := driver.DefaultOptions()
		opts.Variant = v
		opts.Ordering = ordering.Degeneracy

		result, err := driver.Run(hg, opts)
		require.NoError(t, err)
		assert.True(t, hasClique(result.Cliques, []int{1, 2, 3, 4}), "variant %v", v)
	}
}
