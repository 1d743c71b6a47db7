package search

import "github.com/mpelleau/hyperclique/hypergraph"

// runNonUniform enumerates maximal cliques over mixed hyperedge ranks,
// replacing the fixed-rank IsHyperclique test with isNonUniformClique, a
// pairwise coverage test over the simplified edge set contained within a
// candidate, grounded on original_source/HBKGraph.cc's
// isNonUniformClique (simplify + max-rank + binomial criterion).
// Complexity: as runHBK, plus one simplify pass per candidate extension.
func (e *engine) runNonUniform(r, p, x []int) {
	if e.timedOut.Load() {
		return
	}
	e.calls++
	e.traceEvent(NonUniform, r, p, x)

	hg := e.view.Hypergraph()

	if len(r)+len(p) < e.k {
		return
	}

	if len(p) == 0 && len(x) == 0 {
		if len(r) >= e.k && isNonUniformClique(hg, r) {
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
		if len(newR) < 2 || isNonUniformClique(hg, newR) {
			pPrime := cliqueNeighbourhood(e.view, p, v)
			xPrime := cliqueNeighbourhood(e.view, x, v)
			pPrime = e.order.Sort(pPrime)

			e.runNonUniform(newR, pPrime, xPrime)
		}

		p = removeVertex(p, v)
		x = append(x, v)
	}
}

// isNonUniformClique reports whether s is complete under the non-uniform
// criterion: after simplify removes every edge within s that is a subset
// of another edge within s, a set left with at most one edge is complete;
// otherwise every pair of vertices in s must still be
// jointly contained in some surviving edge. This is the mixed-rank
// generalization of IsHyperclique's fixed-k "every k-subset present" test
// down to pairs, since edges here range up to M = hg.MaxRank() in rank
// and a summed-binomial count (as IsHyperclique uses for a single k)
// over-counts once two surviving edges of the same rank share vertices —
// which real hypercliques always do — so direct pair coverage is used
// instead of a count comparison.
//
// hg.EdgesWithin deliberately reads the full, all-rank active edge set
// here rather than a single RankView's: unlike the fixed-k variants, this
// criterion is defined over edges of every rank up to M by construction,
// and pair coverage only grows as more edges of any rank enter the mix,
// so admitting edges outside the rank-k view cannot produce a false
// negative the way it does for IsHyperclique's binomial count.
func isNonUniformClique(hg *hypergraph.Hypergraph, s []int) bool {
	if len(s) < 2 {
		return true
	}

	within := simplifyEdges(hg, hg.EdgesWithin(s))
	if len(within) <= 1 {
		return true
	}

	sets := make([]map[int]struct{}, 0, len(within))
	for id := range within {
		edge, ok := hg.Edge(id)
		if !ok {
			continue
		}
		set := make(map[int]struct{}, len(edge.Vertices))
		for _, v := range edge.Vertices {
			set[v] = struct{}{}
		}
		sets = append(sets, set)
	}

	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if !pairCovered(sets, s[i], s[j]) {
				return false
			}
		}
	}

	return true
}

func pairCovered(sets []map[int]struct{}, u, v int) bool {
	for _, set := range sets {
		if _, ok := set[u]; !ok {
			continue
		}
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}

// simplifyEdges removes any edge in ids whose vertex set is a proper
// subset of another edge also in ids, re-scanning to a fixed point since
// removing one subset edge can reveal another (an edge that was itself a
// subset only of the one just removed, and of nothing else remaining).
// The original's single-pass reduction is not idempotent in general
// (see DESIGN.md); this loop runs it to a fixed point instead.
func simplifyEdges(hg *hypergraph.Hypergraph, ids map[int]struct{}) map[int]struct{} {
	current := make(map[int]struct{}, len(ids))
	for id := range ids {
		current[id] = struct{}{}
	}

	for {
		removed := false
		for a := range current {
			edgeA, ok := hg.Edge(a)
			if !ok {
				continue
			}
			for b := range current {
				if a == b {
					continue
				}
				edgeB, ok := hg.Edge(b)
				if !ok {
					continue
				}
				if len(edgeA.Vertices) < len(edgeB.Vertices) && isSubsetOfSlice(edgeA.Vertices, edgeB.Vertices) {
					delete(current, a)
					removed = true

					break
				}
			}
			if removed {
				break
			}
		}
		if !removed {
			break
		}
	}

	return current
}
