package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpelleau/hyperclique/bloom"
	"github.com/mpelleau/hyperclique/filter"
	"github.com/mpelleau/hyperclique/hypergraph"
)

// k4Hypergraph builds spec.md's S2 K4 example: 4 vertices, all four
// rank-3 triples present, so {1,2,3,4} is a single rank-3 hyperclique.
func k4Hypergraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg.AddEdge(4, []int{2, 3, 4}))

	return hg
}

func TestRefine_None_ReturnsInputUnchanged(t *testing.T) {
	hg := k4Hypergraph(t)
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	got := filter.Refine(filter.None, ctx, []int{1}, 2, []int{3, 4})
	assert.Equal(t, []int{3, 4}, got)
}

func TestRefine_Neighbourhood_KeepsOnlySharedEdgeVertices(t *testing.T) {
	hg := hypergraph.NewHypergraph(5)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 4, 5}))
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	// v=2's only rank-3 neighbours are 1 and 3 (from edge {1,2,3}).
	got := filter.Refine(filter.Neighbourhood, ctx, nil, 2, []int{1, 3, 4, 5})
	assert.ElementsMatch(t, []int{1, 3}, got)
}

func TestRefine_Neighbourhood_NeverAddsVertices(t *testing.T) {
	hg := k4Hypergraph(t)
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	input := []int{2, 3}
	got := filter.Refine(filter.Neighbourhood, ctx, []int{1}, 4, input)
	for _, w := range got {
		assert.Contains(t, input, w)
	}
}

func TestRefine_CliqueExpansion_KeepsK4FullyConnected(t *testing.T) {
	hg := k4Hypergraph(t)
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	got := filter.Refine(filter.CliqueExpansion, ctx, []int{1}, 2, []int{3, 4})
	assert.ElementsMatch(t, []int{3, 4}, got)
}

func TestRefine_CliqueExpansion_DropsDisconnectedCandidate(t *testing.T) {
	hg2 := hypergraph.NewHypergraph(6)
	require.NoError(t, hg2.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg2.AddEdge(2, []int{1, 2, 4}))
	require.NoError(t, hg2.AddEdge(3, []int{1, 3, 4}))
	require.NoError(t, hg2.AddEdge(4, []int{2, 3, 4}))
	require.NoError(t, hg2.AddEdge(5, []int{5, 6, 1})) // shares only vertex 1's incidence, not co-occurrence with 3/4 directly

	view := hg2.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	got := filter.Refine(filter.CliqueExpansion, ctx, []int{1}, 2, []int{3, 4, 6})
	assert.NotContains(t, got, 6)
}

func TestRefine_Incremental_InsufficientHistoryReturnsUnchanged(t *testing.T) {
	hg := k4Hypergraph(t)
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	// len(c) == 0, so only v=1's rank-3 neighbourhood applies, and in the
	// K4 every other vertex is a neighbour of 1.
	got := filter.Refine(filter.Incremental, ctx, nil, 1, []int{2, 3, 4})
	assert.ElementsMatch(t, []int{2, 3, 4}, got)
}

func TestRefine_Incremental_EmptyCliqueRestrictsToNeighbours(t *testing.T) {
	hg := hypergraph.NewHypergraph(6)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	require.NoError(t, hg.AddEdge(2, []int{1, 4, 5}))
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	// C is empty, so the only test is v=1's rank-3 neighbourhood; 6 is
	// not among it.
	got := filter.Refine(filter.Incremental, ctx, nil, 1, []int{2, 3, 4, 5, 6})
	assert.ElementsMatch(t, []int{2, 3, 4, 5}, got)
}

func TestRefine_Incremental_LastVertexShortCircuitKeepsLiveCompletion(t *testing.T) {
	hg := hypergraph.NewHypergraph(4)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3, 4}))
	view := hg.RankView(4)
	ctx := &filter.Context{View: view, K: 4}

	// len(c)+len(pPrime)+1 == k == 4: C∪{v}∪P' is itself {1,2,3,4}, a
	// live rank-4 edge, so all of P' survives.
	got := filter.Refine(filter.Incremental, ctx, []int{1, 2}, 3, []int{4})
	assert.ElementsMatch(t, []int{4}, got)
}

func TestRefine_Incremental_LastVertexShortCircuitRejectsNonEdge(t *testing.T) {
	hg := hypergraph.NewHypergraph(5)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3, 5}))
	// no rank-4 edge contains {1,2,3,4}
	view := hg.RankView(4)
	ctx := &filter.Context{View: view, K: 4}

	got := filter.Refine(filter.Incremental, ctx, []int{1, 2}, 3, []int{4})
	assert.Empty(t, got)
}

func TestRefine_Incremental_RejectsNonEdgeCompletion(t *testing.T) {
	hg := hypergraph.NewHypergraph(5)
	require.NoError(t, hg.AddEdge(1, []int{1, 2, 3}))
	// no edge containing {1,2,4}
	view := hg.RankView(3)
	ctx := &filter.Context{View: view, K: 3}

	// len(c) == 1 == k-2: {1} ∪ {2} ∪ {w} must itself be a live edge.
	got := filter.Refine(filter.Incremental, ctx, []int{1}, 2, []int{3, 4})
	assert.ElementsMatch(t, []int{3}, got)
}

func TestRefine_Bloom_PanicsAboveVertexLimit(t *testing.T) {
	hg := hypergraph.NewHypergraph(filter.MaxBloomVertices + 1)
	vs := make([]int, filter.MaxBloomVertices+1)
	for i := range vs {
		vs[i] = i + 1
	}
	require.NoError(t, hg.AddEdge(1, vs))
	view := hg.RankView(filter.MaxBloomVertices + 1)
	ctx := &filter.Context{View: view, K: filter.MaxBloomVertices + 1, Summary: bloom.NewSummary()}

	assert.Panics(t, func() {
		filter.Refine(filter.Bloom, ctx, nil, 1, []int{2})
	})
}

func TestRefine_Bloom_KeepsGenuineHypercliqueExtension(t *testing.T) {
	hg := k4Hypergraph(t)
	view := hg.RankView(3)

	summary := bloom.NewSummary()
	// Populate the summary with every live rank-3 edge's fingerprint.
	for _, verts := range [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}} {
		summary.Add(3, bloom.FingerprintOf(verts))
	}

	ctx := &filter.Context{View: view, K: 3, Summary: summary}
	got := filter.Refine(filter.Bloom, ctx, []int{1}, 2, []int{3, 4})
	assert.ElementsMatch(t, []int{3, 4}, got)
}
