package hypergraph

// Neighbors returns the vertices sharing at least one active hyperedge with
// v, excluding v itself. Result order is unspecified.
// Complexity: O(deg(v) * avgRank).
func (hg *Hypergraph) Neighbors(v int) []int {
	seen := make(map[int]struct{})
	for id := range hg.byVertex[v] {
		for _, u := range hg.catalogue[id].Vertices {
			if u != v {
				seen[u] = struct{}{}
			}
		}
	}

	out := make([]int, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}

	return out
}

// HyperedgesOf returns the ids of active hyperedges containing v.
// Complexity: O(deg(v)).
func (hg *Hypergraph) HyperedgesOf(v int) []int {
	set := hg.byVertex[v]
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}

	return out
}

// IsNeighbour reports whether v shares at least one active hyperedge with
// every vertex in c.
// Complexity: O(len(c) * avgDeg).
func (hg *Hypergraph) IsNeighbour(c []int, v int) bool {
	for _, u := range c {
		if u == v {
			continue
		}
		if !hg.shareEdge(u, v) {
			return false
		}
	}

	return true
}

func (hg *Hypergraph) shareEdge(u, v int) bool {
	small, big := hg.byVertex[u], hg.byVertex[v]
	if len(small) > len(big) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			return true
		}
	}

	return false
}

// EdgesWithin returns the ids of active hyperedges whose vertex set is a
// subset of s.
// Complexity: O(sum of deg(v) for v in s).
func (hg *Hypergraph) EdgesWithin(s []int) map[int]struct{} {
	return hg.EdgesWithinRestricted(s, hg.active)
}

// EdgesWithinRestricted returns the ids among restrictIDs whose vertex set
// is a subset of s.
// Complexity: O(sum of deg(v) for v in s).
func (hg *Hypergraph) EdgesWithinRestricted(s []int, restrictIDs map[int]struct{}) map[int]struct{} {
	in := make(map[int]struct{}, len(s))
	for _, v := range s {
		in[v] = struct{}{}
	}

	// Gather candidate ids by walking the incidence of the (typically
	// small) set s rather than scanning every active edge.
	candidates := make(map[int]struct{})
	for _, v := range s {
		for id := range hg.byVertex[v] {
			if _, ok := restrictIDs[id]; ok {
				candidates[id] = struct{}{}
			}
		}
	}

	result := make(map[int]struct{})
	for id := range candidates {
		edge := hg.catalogue[id]
		within := true
		for _, v := range edge.Vertices {
			if _, ok := in[v]; !ok {
				within = false
				break
			}
		}
		if within {
			result[id] = struct{}{}
		}
	}

	return result
}

// IsHyperclique reports whether every k-subset of s is an active hyperedge,
// i.e. |EdgesWithin(s)| == C(|s|, k). Requires |s| >= k.
// Complexity: as EdgesWithin, plus a binomial coefficient computation.
func (hg *Hypergraph) IsHyperclique(s []int, k int) bool {
	if len(s) < k {
		return false
	}

	return int64(len(hg.EdgesWithin(s))) == Binomial(len(s), k)
}

// AllVertices returns the hypergraph's full vertex range [1, NVertices()]
// that currently has at least one incident active edge.
// Complexity: O(NVertices()).
func (hg *Hypergraph) AllVertices() []int {
	out := make([]int, 0, len(hg.byVertex))
	for v, set := range hg.byVertex {
		if len(set) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// ActiveVertexCount returns the number of vertices with at least one
// incident active edge — the |V| used by the Bloom filter's safety gate.
func (hg *Hypergraph) ActiveVertexCount() int {
	n := 0
	for _, set := range hg.byVertex {
		if len(set) > 0 {
			n++
		}
	}

	return n
}
