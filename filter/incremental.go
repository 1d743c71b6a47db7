package filter

import "github.com/mpelleau/hyperclique/hypergraph"

// refineIncremental prunes pPrime with the rank-aware dispatch keyed on
// |C| relative to k:
//
//   - C empty: P' ← P' ∩ Neighbors(v) (nothing to check yet).
//   - |C| < k-2: not enough history to test a (k-2)-subset of C, so this
//     recomputes the same clique-neighbourhood restriction as the C-empty
//     case.
//   - |C| + |P'| + 1 == k: C ∪ {v} ∪ P' is itself exactly one candidate
//     rank-k set; keep all of P' if that set is a live edge, else reject
//     all of it.
//   - otherwise: keep w iff every (k-2)-subset T of C satisfies
//     edgesWithin(T ∪ {v, w}) != ∅.
func refineIncremental(ctx *Context, c []int, v int, pPrime []int) []int {
	k := ctx.K
	view := ctx.View
	hg := view.Hypergraph()
	liveEdges := view.Edges()

	switch {
	case len(c) == 0:
		return refineNeighbourhood(ctx, v, pPrime)
	case len(c) < k-2:
		return refineNeighbourhood(ctx, v, pPrime)
	case len(c)+len(pPrime)+1 == k:
		s := make([]int, 0, len(c)+1+len(pPrime))
		s = append(s, c...)
		s = append(s, v)
		s = append(s, pPrime...)
		if hasLiveEdgeEqualTo(hg, liveEdges, s) {
			return pPrime
		}

		return nil
	default:
		subsets := hypergraph.Subsets(c, k-2)
		kept := make([]int, 0, len(pPrime))
		for _, w := range pPrime {
			consistent := true
			for _, t := range subsets {
				s := append(append([]int{}, t...), v, w)
				if !hasLiveEdgeEqualTo(hg, liveEdges, s) {
					consistent = false
					break
				}
			}
			if consistent {
				kept = append(kept, w)
			}
		}

		return kept
	}
}

// hasLiveEdgeEqualTo reports whether some live edge has vertex set exactly
// s: since liveEdges is already restricted to rank k and |s| == k in both
// call sites, any live edge found as a subset of s necessarily has a
// vertex set equal to s.
func hasLiveEdgeEqualTo(hg *hypergraph.Hypergraph, liveEdges map[int]struct{}, s []int) bool {
	return len(hg.EdgesWithinRestricted(s, liveEdges)) > 0
}
