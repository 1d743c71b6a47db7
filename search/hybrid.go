package search

import "github.com/mpelleau/hyperclique/filter"

// runHybridHBK is the original's findCliquesBis: a relaxed maximality
// test (emit once P=∅ and either X=∅ or cliqueNbhd(R,X) is empty) paired
// with an eager validity check before descending into a candidate at all.
// Complexity: as runHBK.
func (e *engine) runHybridHBK(r, p, x []int) {
	if e.timedOut.Load() {
		return
	}
	e.calls++
	e.traceEvent(HybridHBK, r, p, x)

	if len(r)+len(p) < e.k {
		return
	}

	if len(p) == 0 {
		if len(x) == 0 || !cliqueNbhdNonEmpty(e.view, r, x) {
			if len(r) >= e.k {
				e.emit(r)
			}
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

			e.runHybridHBK(newR, pPrime, xPrime)
		}

		p = removeVertex(p, v)
		x = append(x, v)
	}
}
