// Package filter implements the candidate-pruning strategies the search
// engine applies to P' at each recursion node before branching: None,
// Bloom, CliqueExpansion, Neighbourhood, and Incremental. A filter never
// adds vertices to its input — it only ever narrows P' — which is the
// property every filter's tests check directly.
package filter

import (
	"github.com/mpelleau/hyperclique/bloom"
	"github.com/mpelleau/hyperclique/hypergraph"
	"github.com/mpelleau/hyperclique/ordering"
)

// Kind selects a candidate-pruning strategy, mirroring the iota-enum,
// switch-dispatched shape used throughout this module (no interfaces, no
// vtables — one strategy field, one switch).
type Kind int

const (
	// None performs no pruning: Refine returns pPrime unchanged.
	None Kind = iota

	// Bloom prunes using the rank-bucketed fingerprint superset count as
	// an upper bound on the true hyperedge count within a candidate set.
	// Only safe for hypergraphs with at most 128 active vertices.
	Bloom

	// CliqueExpansion prunes via 2-graph Bron–Kerbosch over the
	// co-occurrence expansion of C ∪ P'.
	CliqueExpansion

	// Neighbourhood prunes to P' ∩ Neighbors(v).
	Neighbourhood

	// Incremental prunes via a rank-aware consistency check against the
	// (k-2)-subsets of C, dispatching on |C| relative to k.
	Incremental
)

// MaxBloomVertices is the largest active vertex count for which the Bloom
// filter's 128-bit fingerprints remain a valid superset bound.
const MaxBloomVertices = 128

// Context bundles everything a filter needs beyond the (C, v, P') triple:
// the rank-restricted view it operates over, the Bloom summary (nil unless
// Kind == Bloom), the active rank k, and the branching order (carried for
// callers re-ordering P' after filtering; no filter here reads it).
type Context struct {
	View    *hypergraph.RankView
	Summary *bloom.Summary
	K       int
	Order   ordering.Sequence
}

// Refine narrows pPrime per the chosen strategy. c is the current partial
// clique (R in spec.md's notation), v is the vertex about to be added to
// it, and pPrime is the remaining candidate set to prune before recursing.
// Refine always returns a subset of pPrime.
func Refine(kind Kind, ctx *Context, c []int, v int, pPrime []int) []int {
	switch kind {
	case None:
		return pPrime
	case Bloom:
		return refineBloom(ctx, c, v, pPrime)
	case CliqueExpansion:
		return refineCliqueExpansion(ctx, c, v, pPrime)
	case Neighbourhood:
		return refineNeighbourhood(ctx, v, pPrime)
	case Incremental:
		return refineIncremental(ctx, c, v, pPrime)
	default:
		return pPrime
	}
}
