package hypergraph

import "sort"

// RankView is a read-only sub-hypergraph restricted to the hyperedges of
// exactly rank K. Its vertex set is the union of those edges. RankView
// borrows its queries from the underlying Hypergraph but filters to the
// rank-K incidence so the search engine never sees an edge of the wrong
// arity.
type RankView struct {
	hg       *Hypergraph
	k        int
	edgeIDs  map[int]struct{}
	vertices map[int]struct{}
}

// RankView builds the sub-hypergraph of hg's active edges of rank exactly k.
// Complexity: O(edges of rank k * k).
func (hg *Hypergraph) RankView(k int) *RankView {
	edgeIDs := make(map[int]struct{})
	for id := range hg.byRank[k] {
		edgeIDs[id] = struct{}{}
	}

	vertices := make(map[int]struct{})
	for id := range edgeIDs {
		for _, v := range hg.catalogue[id].Vertices {
			vertices[v] = struct{}{}
		}
	}

	return &RankView{hg: hg, k: k, edgeIDs: edgeIDs, vertices: vertices}
}

// K returns the rank this view is restricted to.
func (rv *RankView) K() int { return rv.k }

// Hypergraph returns the underlying (unrestricted) hypergraph this view
// was built from — used by filters that need full-graph queries (e.g.
// Bloom, Incremental) alongside the rank-restricted edge set.
func (rv *RankView) Hypergraph() *Hypergraph { return rv.hg }

// Vertices returns the view's vertex set (union of its rank-k edges) as a
// sorted slice.
// Complexity: O(V log V).
func (rv *RankView) Vertices() []int {
	out := make([]int, 0, len(rv.vertices))
	for v := range rv.vertices {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// SetVertices overrides the view's live vertex set — used by the driver's
// node pre-filters (degree, co-occurrence), which drop vertices from a
// RankView before search without touching the underlying Hypergraph.
func (rv *RankView) SetVertices(vs map[int]struct{}) {
	rv.vertices = vs
}

// RemoveVertex drops v from the view's live vertex set (it remains in the
// underlying Hypergraph). Used by node pre-filters.
func (rv *RankView) RemoveVertex(v int) {
	delete(rv.vertices, v)
}

// HasVertex reports whether v is still live in this view.
func (rv *RankView) HasVertex(v int) bool {
	_, ok := rv.vertices[v]

	return ok
}

// Edges returns the ids of this view's rank-k hyperedges whose vertices are
// all still live (per the view's current vertex set, which node pre-filters
// may have shrunk).
// Complexity: O(edges of rank k * k).
func (rv *RankView) Edges() map[int]struct{} {
	out := make(map[int]struct{}, len(rv.edgeIDs))
	for id := range rv.edgeIDs {
		edge := rv.hg.catalogue[id]
		live := true
		for _, v := range edge.Vertices {
			if _, ok := rv.vertices[v]; !ok {
				live = false
				break
			}
		}
		if live {
			out[id] = struct{}{}
		}
	}

	return out
}

// HyperedgesOf returns the ids of this view's live rank-k edges incident to v.
func (rv *RankView) HyperedgesOf(v int) []int {
	out := make([]int, 0)
	for id := range rv.hg.byVertex[v] {
		if _, ok := rv.edgeIDs[id]; !ok {
			continue
		}
		if rv.edgeIsLive(id) {
			out = append(out, id)
		}
	}

	return out
}

func (rv *RankView) edgeIsLive(id int) bool {
	for _, v := range rv.hg.catalogue[id].Vertices {
		if _, ok := rv.vertices[v]; !ok {
			return false
		}
	}

	return true
}

// Neighbors returns the live vertices sharing a live rank-k edge with v.
func (rv *RankView) Neighbors(v int) []int {
	seen := make(map[int]struct{})
	for _, id := range rv.HyperedgesOf(v) {
		for _, u := range rv.hg.catalogue[id].Vertices {
			if u != v {
				if _, ok := rv.vertices[u]; ok {
					seen[u] = struct{}{}
				}
			}
		}
	}

	out := make([]int, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}

	return out
}

// EdgesWithin returns the ids of this view's live rank-k edges whose vertex
// set is a subset of s. Unlike Hypergraph.EdgesWithin, this never sees an
// edge of a rank other than this view's k, regardless of what other ranks
// happen to be active in the underlying Hypergraph at the same time.
// Complexity: O(sum of deg(v) for v in s).
func (rv *RankView) EdgesWithin(s []int) map[int]struct{} {
	return rv.hg.EdgesWithinRestricted(s, rv.Edges())
}

// IsHyperclique reports whether every k-subset of s is one of this view's
// live rank-k edges, i.e. |EdgesWithin(s)| == C(|s|, k). Requires |s| >= k.
// Complexity: as EdgesWithin, plus a binomial coefficient computation.
func (rv *RankView) IsHyperclique(s []int) bool {
	if len(s) < rv.k {
		return false
	}

	return int64(len(rv.EdgesWithin(s))) == Binomial(len(s), rv.k)
}

// IsNeighbour reports whether v shares a live rank-k edge with every
// vertex in c.
// Complexity: O(len(c) * avgDeg).
func (rv *RankView) IsNeighbour(c []int, v int) bool {
	for _, u := range c {
		if u == v {
			continue
		}
		if !rv.shareLiveEdge(u, v) {
			return false
		}
	}

	return true
}

func (rv *RankView) shareLiveEdge(u, v int) bool {
	other := make(map[int]struct{})
	for _, id := range rv.HyperedgesOf(v) {
		other[id] = struct{}{}
	}
	for _, id := range rv.HyperedgesOf(u) {
		if _, ok := other[id]; ok {
			return true
		}
	}

	return false
}
