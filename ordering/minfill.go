package ordering

import (
	"sort"

	"github.com/mpelleau/hyperclique/hypergraph"
)

// computeMinFill runs the classical minimum-fill elimination heuristic over
// view's clique expansion (the 2-graph where u,v are adjacent iff they
// co-occur in some live rank-k edge). At each step it eliminates the
// remaining vertex whose removal would add the fewest "fill" edges among
// its still-present neighbours, then connects those neighbours pairwise
// (simulating the elimination) before continuing.
//
// No pack library implements minimum-fill elimination ordering (see
// DESIGN.md), so this is a direct, justified stdlib implementation.
// Complexity: O(V^3) worst case (V elimination steps, each scanning O(V^2)
// neighbour pairs) — acceptable since rank-k views are the node-prefiltered,
// typically small sub-hypergraphs the driver hands to ordering.
func computeMinFill(view *hypergraph.RankView) Sequence {
	vs := view.Vertices()
	adj := make(map[int]map[int]struct{}, len(vs))
	for _, v := range vs {
		adj[v] = make(map[int]struct{})
	}
	for _, v := range vs {
		for _, u := range view.Neighbors(v) {
			if _, ok := adj[u]; ok {
				adj[v][u] = struct{}{}
				adj[u][v] = struct{}{}
			}
		}
	}

	remaining := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		remaining[v] = struct{}{}
	}

	order := make([]int, 0, len(vs))
	for len(remaining) > 0 {
		best, bestFill := -1, -1
		// Deterministic tie-break: scan candidates in ascending id order.
		candidates := make([]int, 0, len(remaining))
		for v := range remaining {
			candidates = append(candidates, v)
		}
		sort.Ints(candidates)

		for _, v := range candidates {
			fill := fillCount(adj, remaining, v)
			if best == -1 || fill < bestFill {
				best, bestFill = v, fill
			}
		}

		eliminate(adj, remaining, best)
		order = append(order, best)
		delete(remaining, best)
	}

	return sequenceFromOrder(order)
}

// fillCount counts the missing edges among v's still-present neighbours —
// the fill-in cost of eliminating v right now.
func fillCount(adj map[int]map[int]struct{}, remaining map[int]struct{}, v int) int {
	neighbours := make([]int, 0, len(adj[v]))
	for u := range adj[v] {
		if _, ok := remaining[u]; ok {
			neighbours = append(neighbours, u)
		}
	}

	missing := 0
	for i := 0; i < len(neighbours); i++ {
		for j := i + 1; j < len(neighbours); j++ {
			a, b := neighbours[i], neighbours[j]
			if _, ok := adj[a][b]; !ok {
				missing++
			}
		}
	}

	return missing
}

// eliminate connects v's still-present neighbours pairwise (fills them in).
func eliminate(adj map[int]map[int]struct{}, remaining map[int]struct{}, v int) {
	neighbours := make([]int, 0, len(adj[v]))
	for u := range adj[v] {
		if _, ok := remaining[u]; ok {
			neighbours = append(neighbours, u)
		}
	}

	for i := 0; i < len(neighbours); i++ {
		for j := i + 1; j < len(neighbours); j++ {
			a, b := neighbours[i], neighbours[j]
			adj[a][b] = struct{}{}
			adj[b][a] = struct{}{}
		}
	}
}
