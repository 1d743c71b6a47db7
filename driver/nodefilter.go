package driver

import "github.com/mpelleau/hyperclique/hypergraph"

// NodeFilterKind selects which pre-filter(s) strip vertices from a rank
// view before the main search ever runs — a vertex that provably cannot
// join any rank-k hyperclique is pure search overhead otherwise.
type NodeFilterKind int

const (
	// NodeFilterNone applies no pre-filtering.
	NodeFilterNone NodeFilterKind = iota

	// NodeFilterDegree drops vertices with fewer than k incident rank-k
	// hyperedges (rank-k edge-degree < k).
	NodeFilterDegree

	// NodeFilterCoOccurrence drops vertices with fewer than k neighbours
	// that each share at least k-1 live rank-k edges with them.
	NodeFilterCoOccurrence

	// NodeFilterBoth applies Degree then CoOccurrence.
	NodeFilterBoth
)

// applyNodeFilters runs the configured pre-filter(s) to a fixed point,
// recording each dropped vertex's still-live incident rank-k edges as
// trivial cliques via sink before the vertex is removed — grounded on
// original_source/Graph.cc's filterByFreq/filterByCoOccurrences, which
// perform the identical bookkeeping-then-removal sequence.
func applyNodeFilters(view *hypergraph.RankView, k int, kind NodeFilterKind, sink func([]int)) {
	switch kind {
	case NodeFilterNone:
		return
	case NodeFilterDegree:
		filterByDegree(view, k, sink)
	case NodeFilterCoOccurrence:
		filterByCoOccurrence(view, sink)
	case NodeFilterBoth:
		filterByDegree(view, k, sink)
		filterByCoOccurrence(view, sink)
	}
}

func filterByDegree(view *hypergraph.RankView, k int, sink func([]int)) {
	for {
		removed := false
		for _, v := range view.Vertices() {
			if len(view.HyperedgesOf(v)) < k {
				recordTrivialCliques(view, v, sink)
				view.RemoveVertex(v)
				removed = true
			}
		}
		if !removed {
			break
		}
	}
}

func filterByCoOccurrence(view *hypergraph.RankView, sink func([]int)) {
	k := view.K()
	for {
		removed := false
		for _, v := range view.Vertices() {
			shared := make(map[int]int)
			for _, id := range view.HyperedgesOf(v) {
				edge, _ := view.Hypergraph().Edge(id)
				for _, u := range edge.Vertices {
					if u != v {
						shared[u]++
					}
				}
			}
			strong := 0
			for _, n := range shared {
				if n >= k-1 {
					strong++
				}
			}
			if strong < k {
				recordTrivialCliques(view, v, sink)
				view.RemoveVertex(v)
				removed = true
			}
		}
		if !removed {
			break
		}
	}
}

// recordTrivialCliques reports v's still-live incident rank-k edges as
// maximal cliques in their own right before v is dropped from the view —
// once v is removed, the search never has a chance to discover them.
func recordTrivialCliques(view *hypergraph.RankView, v int, sink func([]int)) {
	for _, id := range view.HyperedgesOf(v) {
		edge, ok := view.Hypergraph().Edge(id)
		if !ok {
			continue
		}
		sink(append([]int{}, edge.Vertices...))
	}
}
