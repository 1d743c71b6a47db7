// Package twograph implements plain (2-uniform) Bron–Kerbosch maximal
// clique enumeration over an ordinary graph. It exists as its own package
// because it is reused by two different hyperclique components that must
// not import each other: the CliqueExpansion candidate filter (filter
// package) and the CE-then-HBK search variant's over-approximation step
// (search package) — both run ordinary Bron–Kerbosch over a clique
// expansion graph and only differ in what they do with the resulting
// cliques. SPEC_FULL.md §7 grounds this on original_source/BronKerbosch.cc's
// findCliques, which the original reuses the same way from
// candidateCliqueFilter and getHyperCliqueCE_HBK.
package twograph

// Graph is an adjacency-set view over a fixed vertex slice, sufficient for
// plain Bron–Kerbosch. Callers build it directly; there is no mutation API
// because each run operates on a fresh, throwaway expansion graph.
type Graph struct {
	adjacency map[int]map[int]struct{}
}

// NewGraph builds a Graph from vertices and a symmetric edge list. Edges
// are normalized (both directions recorded); self-loops are ignored.
func NewGraph(vertices []int, edges [][2]int) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]struct{}, len(vertices))}
	for _, v := range vertices {
		g.adjacency[v] = make(map[int]struct{})
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		if g.adjacency[u] == nil {
			g.adjacency[u] = make(map[int]struct{})
		}
		if g.adjacency[v] == nil {
			g.adjacency[v] = make(map[int]struct{})
		}
		g.adjacency[u][v] = struct{}{}
		g.adjacency[v][u] = struct{}{}
	}

	return g
}

// Neighbors returns v's neighbours in the expansion graph.
func (g *Graph) Neighbors(v int) map[int]struct{} { return g.adjacency[v] }

// BronKerbosch enumerates every maximal clique of g via classic
// Bron–Kerbosch with pivoting, seeded with R=∅, P=all vertices, X=∅.
// Complexity: worst-case exponential in |V|, as for any exact maximal-clique
// enumerator; typical expansion graphs handed to it are small (one rank's
// node-prefiltered candidate neighbourhood).
func (g *Graph) BronKerbosch() [][]int {
	all := make(map[int]struct{}, len(g.adjacency))
	for v := range g.adjacency {
		all[v] = struct{}{}
	}

	var cliques [][]int
	bk(g, nil, all, make(map[int]struct{}), &cliques)

	return cliques
}

func bk(g *Graph, r []int, p, x map[int]struct{}, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]int, len(r))
		copy(clique, r)
		*out = append(*out, clique)

		return
	}

	pivot := choosePivot(p, x)
	pivotNeighbours := g.adjacency[pivot]

	candidates := make([]int, 0, len(p))
	for v := range p {
		if _, ok := pivotNeighbours[v]; !ok {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		vNeighbours := g.adjacency[v]

		newP := intersect(p, vNeighbours)
		newX := intersect(x, vNeighbours)

		bk(g, append(r, v), newP, newX, out)

		delete(p, v)
		x[v] = struct{}{}
	}
}

// choosePivot picks any vertex from p ∪ x (here, the first encountered);
// pivoting only affects performance, never correctness.
func choosePivot(p, x map[int]struct{}) int {
	for v := range p {
		return v
	}
	for v := range x {
		return v
	}

	return 0
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for v := range small {
		if _, ok := big[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}
