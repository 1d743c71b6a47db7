package filter

import "github.com/mpelleau/hyperclique/twograph"

// refineCliqueExpansion prunes pPrime by running ordinary Bron–Kerbosch
// over the 2-graph clique expansion of C ∪ {v} ∪ P' (vertices adjacent iff
// they co-occur in some live rank-k edge) and keeping only candidates w
// for which some maximal 2-clique contains C ∪ {v, w} as a subset. This is
// an over-approximation — the search engine still verifies the real
// hyperclique condition once a candidate is actually added to R — but it
// discards vertices no rank-k extension could ever reach.
//
// Grounded on original_source/BronKerbosch.cc's findCliques, reused here
// through twograph.Graph.BronKerbosch exactly as the original reuses it
// from candidateCliqueFilter.
func refineCliqueExpansion(ctx *Context, c []int, v int, pPrime []int) []int {
	view := ctx.View

	vertices := make([]int, 0, len(c)+1+len(pPrime))
	vertices = append(vertices, c...)
	vertices = append(vertices, v)
	vertices = append(vertices, pPrime...)

	inSet := make(map[int]struct{}, len(vertices))
	for _, u := range vertices {
		inSet[u] = struct{}{}
	}

	var edges [][2]int
	seen := make(map[[2]int]struct{})
	for _, u := range vertices {
		for _, w := range view.Neighbors(u) {
			if _, ok := inSet[w]; !ok || w == u {
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

	g := twograph.NewGraph(vertices, edges)
	cliques := g.BronKerbosch()

	required := make(map[int]struct{}, len(c)+1)
	for _, u := range c {
		required[u] = struct{}{}
	}
	required[v] = struct{}{}

	reachable := make(map[int]struct{})
	for _, clique := range cliques {
		members := make(map[int]struct{}, len(clique))
		for _, u := range clique {
			members[u] = struct{}{}
		}

		hasAllRequired := true
		for u := range required {
			if _, ok := members[u]; !ok {
				hasAllRequired = false
				break
			}
		}
		if !hasAllRequired {
			continue
		}

		for u := range members {
			reachable[u] = struct{}{}
		}
	}

	kept := make([]int, 0, len(pPrime))
	for _, w := range pPrime {
		if _, ok := reachable[w]; ok {
			kept = append(kept, w)
		}
	}

	return kept
}
