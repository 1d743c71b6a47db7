package search

import "github.com/mpelleau/hyperclique/twograph"

// RunCE2Graph runs plain 2-graph Bron–Kerbosch over vertices with the
// given co-occurrence edges, returning every maximal 2-clique. It wraps
// twograph's Bron–Kerbosch, the one implementation shared with the
// CliqueExpansion filter (which calls twograph directly), grounded on
// original_source/BronKerbosch.cc's findCliques, which the original
// reuses the same way from candidateCliqueFilter and
// getHyperCliqueCE_HBK.
func RunCE2Graph(vertices []int, edges [][2]int) [][]int {
	return twograph.NewGraph(vertices, edges).BronKerbosch()
}

// runCEHBK implements Graph::getHyperCliqueCE_HBK: build the clique
// expansion over p, enumerate its maximal 2-cliques as pseudo-cliques,
// keep any that are already real hypercliques outright, and for the rest
// restrict the hypergraph to exactly that pseudo-clique's constituent
// edges and re-run HBK inside it. Restoration of the unrestricted active
// edge set is unconditional (deferred) so a mid-verification timeout
// never leaves the hypergraph permanently narrowed.
// Complexity: one 2-graph BK pass over |P|, plus one HBK sub-search per
// pseudo-clique that isn't already a real hyperclique.
func (e *engine) runCEHBK(p []int) {
	if e.timedOut.Load() {
		return
	}
	e.calls++

	vertices := append([]int{}, p...)

	var edges [][2]int
	seen := make(map[[2]int]struct{})
	for _, u := range vertices {
		for _, w := range e.view.Neighbors(u) {
			if w == u || !containsInt(vertices, w) {
				continue
			}
			a, b := u, w
			if b < a {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}

	pseudoCliques := RunCE2Graph(vertices, edges)

	var found [][]int
	for _, cand := range pseudoCliques {
		if e.timedOut.Load() {
			return
		}
		if len(cand) < e.k {
			continue
		}
		if e.view.IsHyperclique(cand) {
			found = append(found, cand)

			continue
		}

		found = append(found, e.verifyPseudoClique(cand)...)
	}

	for _, c := range dedupMaximal(found) {
		e.emit(c)
	}
}

// verifyPseudoClique restricts hg to exactly cand's constituent rank-k
// edges and re-runs HBK from scratch inside that restriction, returning
// whatever maximal hypercliques HBK finds there. The restriction is
// always undone via defer, even on a timeout mid-search.
func (e *engine) verifyPseudoClique(cand []int) [][]int {
	hg := e.view.Hypergraph()
	within := e.view.EdgesWithin(cand)

	snap := hg.Snapshot()
	defer hg.Restore(snap)
	hg.RestrictTo(within)

	sub := hg.RankView(e.k)
	p2 := e.order.Sort(sub.Vertices())

	var local [][]int
	child := &engine{
		view:       sub,
		k:          e.k,
		order:      e.order,
		filterKind: e.filterKind,
		summary:    e.summary,
		mode:       FindAll,
		timedOut:   e.timedOut,
		sink:       func(c []int) { local = append(local, c) },
		trace:      e.trace,
	}
	child.runHBK(nil, p2, nil)
	e.calls += child.calls

	return local
}

// dedupMaximal drops any clique in cliques that is a subset of another
// clique also present — pseudo-clique verification across overlapping
// restrictions can otherwise rediscover the same hyperclique more than
// once or find a proper sub-clique of one already kept.
func dedupMaximal(cliques [][]int) [][]int {
	kept := make([]bool, len(cliques))
	for i := range cliques {
		kept[i] = true
	}

	for i, a := range cliques {
		if !kept[i] {
			continue
		}
		for j, b := range cliques {
			if i == j || !kept[j] {
				continue
			}
			// An equal-length subset is the same clique: keep only the first.
			if (len(a) < len(b) || (len(a) == len(b) && j < i)) && isSubsetOfSlice(a, b) {
				kept[i] = false

				break
			}
		}
	}

	var out [][]int
	for i, c := range cliques {
		if kept[i] {
			out = append(out, c)
		}
	}

	return out
}

func isSubsetOfSlice(a, b []int) bool {
	set := make(map[int]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := set[v]; !ok {
			return false
		}
	}

	return true
}
