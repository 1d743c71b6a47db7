package filter

// refineNeighbourhood keeps only candidates that share a live rank-k edge
// with v — the cheapest of the four filters, grounded directly on
// hypergraph.RankView.Neighbors.
func refineNeighbourhood(ctx *Context, v int, pPrime []int) []int {
	neighbours := make(map[int]struct{})
	for _, u := range ctx.View.Neighbors(v) {
		neighbours[u] = struct{}{}
	}

	kept := make([]int, 0, len(pPrime))
	for _, w := range pPrime {
		if _, ok := neighbours[w]; ok {
			kept = append(kept, w)
		}
	}

	return kept
}
