// Package ordering produces the vertex orderings the search engine uses to
// decide branching order at each recursion node: random, natural,
// min-degree, max-degree, min-fill, and degeneracy. Correctness of the
// search never depends on the choice — only performance does (spec.md
// §4.3) — so every strategy here is judged purely on producing *a* total
// order, not on producing the "best" one.
package ordering

import (
	"math/rand"
	"sort"

	"github.com/mpelleau/hyperclique/hypergraph"
)

// Kind selects a vertex-ordering strategy.
type Kind int

const (
	// Random shuffles the vertex set uniformly.
	Random Kind = iota

	// Natural orders vertices by ascending vertex id (identity order).
	Natural

	// MinDegree orders vertices by ascending hyperedge degree.
	MinDegree

	// MaxDegree orders vertices by descending hyperedge degree.
	MaxDegree

	// MinFill orders vertices by a minimum-fill elimination heuristic
	// over the view's clique expansion.
	MinFill

	// Degeneracy orders vertices by iterative k-core peeling order.
	Degeneracy
)

// Sequence maps vertex -> its position in the order (0-based, ascending).
type Sequence map[int]int

// Less reports whether a precedes b in the sequence. Vertices absent from
// the sequence sort after every present vertex, stably by id.
func (s Sequence) Less(a, b int) bool {
	pa, oka := s[a]
	pb, okb := s[b]
	switch {
	case oka && okb:
		return pa < pb
	case oka:
		return true
	case okb:
		return false
	default:
		return a < b
	}
}

// Sort returns a copy of vs ordered ascending per s.
func (s Sequence) Sort(vs []int) []int {
	out := make([]int, len(vs))
	copy(out, vs)
	sort.Slice(out, func(i, j int) bool { return s.Less(out[i], out[j]) })

	return out
}

func sequenceFromOrder(order []int) Sequence {
	seq := make(Sequence, len(order))
	for i, v := range order {
		seq[v] = i
	}

	return seq
}

// Compute builds the Sequence for the given strategy over view. rnd is
// consulted only by Random; callers pass a caller-owned source so
// Seed-driven runs stay reproducible in tests.
func Compute(kind Kind, view *hypergraph.RankView, rnd *rand.Rand) Sequence {
	switch kind {
	case Random:
		return computeRandom(view, rnd)
	case Natural:
		return computeNatural(view)
	case MinDegree:
		return computeByDegree(view, true)
	case MaxDegree:
		return computeByDegree(view, false)
	case MinFill:
		return computeMinFill(view)
	case Degeneracy:
		return computeDegeneracy(view)
	default:
		return computeNatural(view)
	}
}

func computeRandom(view *hypergraph.RankView, rnd *rand.Rand) Sequence {
	vs := view.Vertices()
	if rnd == nil {
		rnd = rand.New(rand.NewSource(0))
	}
	rnd.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })

	return sequenceFromOrder(vs)
}

func computeNatural(view *hypergraph.RankView) Sequence {
	return sequenceFromOrder(view.Vertices())
}

func computeByDegree(view *hypergraph.RankView, ascending bool) Sequence {
	vs := view.Vertices()
	sort.Slice(vs, func(i, j int) bool {
		di, dj := len(view.HyperedgesOf(vs[i])), len(view.HyperedgesOf(vs[j]))
		if di == dj {
			return vs[i] < vs[j]
		}
		if ascending {
			return di < dj
		}

		return di > dj
	})

	return sequenceFromOrder(vs)
}
