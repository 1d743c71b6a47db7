package search

import "github.com/mpelleau/hyperclique/filter"

// runHBK is the baseline hyperclique Bron–Kerbosch recursion: cut the
// branch once |R|+|P| < k, and at each candidate v descend only if
// R ∪ {v} still has fewer than k vertices or is itself a valid rank-k
// hyperclique, refine P'/X' to the rank-k neighbourhood of v (further
// narrowed by the configured candidate filter), and emit R as a maximal
// hyperclique once P and X are both exhausted.
// Complexity: worst-case exponential in |P|, as for any exact maximal
// hyperclique enumerator.
func (e *engine) runHBK(r, p, x []int) {
	if e.timedOut.Load() {
		return
	}
	e.calls++
	e.traceEvent(HBK, r, p, x)

	if len(r)+len(p) < e.k {
		return
	}

	if len(p) == 0 && len(x) == 0 {
		if len(r) >= e.k {
			e.emit(r)
		}

		return
	}

	candidates := append([]int{}, p...)

	for _, v := range candidates {
		if e.timedOut.Load() {
			return
		}
		if e.mode == FindMax && len(e.best) > 0 && len(r)+len(p) <= len(e.best) {
			return
		}

		newR := append(append([]int{}, r...), v)
		if len(newR) < e.k || e.view.IsHyperclique(newR) {
			pPrime := cliqueNeighbourhood(e.view, p, v)
			xPrime := cliqueNeighbourhood(e.view, x, v)
			pPrime = e.order.Sort(pPrime)
			pPrime = filter.Refine(e.filterKind, e.filterContext(), r, v, pPrime)

			e.runHBK(newR, pPrime, xPrime)
		}

		p = removeVertex(p, v)
		x = append(x, v)
	}
}
