package hypergraph

import "gonum.org/v1/gonum/stat/combin"

// Binomial returns C(n, k), the number of k-subsets of an n-set. Matches
// SPEC_FULL.md's domain-stack choice of gonum's combin package rather than
// a hand-rolled factorial table.
//
// Negative n or k, or k > n, are programmer errors (the search engine never
// calls this with such arguments) and panic rather than returning a
// sentinel error, per SPEC_FULL.md's fail-fast posture for internal
// invariants.
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		panic("hypergraph: Binomial called with invalid n/k")
	}

	return int64(combin.Binomial(n, k))
}

// Subsets returns every k-subset of set, as index combinations resolved
// against set's elements. Order of subsets is unspecified; each subset's
// elements preserve set's relative order.
// Complexity: O(C(len(set),k) * k).
func Subsets(set []int, k int) [][]int {
	if k < 0 || k > len(set) {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	combos := combin.Combinations(len(set), k)
	out := make([][]int, len(combos))
	for i, idx := range combos {
		sub := make([]int, k)
		for j, pos := range idx {
			sub[j] = set[pos]
		}
		out[i] = sub
	}

	return out
}
