package filter

import (
	"github.com/mpelleau/hyperclique/bloom"
	"github.com/mpelleau/hyperclique/hypergraph"
)

// refineBloom keeps a candidate w only if the fingerprint superset count
// for C ∪ {v, w} still meets the binomial lower bound a genuine rank-k
// hyperclique over that set would require. Because CountSupersets is an
// upper bound (collisions can only overcount, never undercount), failing
// the bound is a safe rejection: no real hyperclique is ever pruned.
//
// Only constructible when the view's active vertex count is at most
// filter.MaxBloomVertices — driver.Options.Validate rejects Bloom before a
// search ever starts, but Refine re-asserts the same invariant so a
// misuse from any other caller fails loudly rather than silently
// computing a meaningless fingerprint.
func refineBloom(ctx *Context, c []int, v int, pPrime []int) []int {
	view := ctx.View
	if view.Hypergraph().ActiveVertexCount() > MaxBloomVertices {
		panic("filter: Bloom selected over a hypergraph with more than MaxBloomVertices active vertices")
	}

	k := ctx.K
	base := make([]int, 0, len(c)+1)
	base = append(base, c...)
	base = append(base, v)

	kept := make([]int, 0, len(pPrime))
	for _, w := range pPrime {
		s := append(append([]int{}, base...), w)
		if len(s) < k {
			// Cannot yet form a full rank-k subset; nothing to test.
			kept = append(kept, w)
			continue
		}

		fp := bloom.FingerprintOf(s)
		required := hypergraph.Binomial(len(s), k)
		if int64(ctx.Summary.CountSupersets(fp, k)) >= required {
			kept = append(kept, w)
		}
	}

	return kept
}
