// Package search implements the four maximal-hyperclique enumeration
// variants over a single rank view: HBK, hybrid HBK, CE-then-HBK, and
// non-uniform. All four share one engine struct, a single timeout cell,
// and the candidate-pruning filters in the filter package.
//
// Grounded on tsp/bb.go's bbEngine: a dedicated struct carrying search
// state and policy rather than a closure-captured recursion, with a
// sparse deadline check rather than one on every statement.
package search

import (
	"sort"
	"sync/atomic"

	"github.com/mpelleau/hyperclique/bloom"
	"github.com/mpelleau/hyperclique/filter"
	"github.com/mpelleau/hyperclique/hypergraph"
	"github.com/mpelleau/hyperclique/ordering"
)

// Variant selects a search recursion strategy.
type Variant int

const (
	// HBK is the baseline hyperclique Bron–Kerbosch recursion.
	HBK Variant = iota

	// HybridHBK emits on a relaxed maximality test (P=∅ ∧ (X=∅ ∨
	// cliqueNbhd(R, X)=∅)) and only descends into
	// candidates that already form a valid partial hyperclique.
	HybridHBK

	// CEHBK over-approximates via 2-graph clique expansion first, then
	// re-runs HBK only inside each resulting pseudo-clique's induced
	// edge set.
	CEHBK

	// NonUniform enumerates maximal cliques across mixed hyperedge ranks
	// using the simplify + max-rank binomial criterion in place of a
	// fixed-rank IsHyperclique test.
	NonUniform
)

// Mode selects whether a run collects every maximal hyperclique or only
// tracks the largest one seen.
type Mode int

const (
	// FindAll reports every maximal hyperclique found.
	FindAll Mode = iota

	// FindMax reports only a single largest hyperclique found.
	FindMax
)

// TraceEvent is an observation point emitted through Options.Trace, an
// idiomatic observer hook in place of inline stdout tracing.
type TraceEvent struct {
	Variant Variant
	R       []int
	PSize   int
	XSize   int
}

// Options configures a single Run call.
type Options struct {
	Variant  Variant
	Filter   filter.Kind
	Mode     Mode
	Summary  *bloom.Summary
	TimedOut *atomic.Bool
	Sink     func(clique []int)
	Trace    func(TraceEvent)
}

// Stats reports what a Run call actually did, independent of whether any
// downstream JSON rendering of it ever happens.
type Stats struct {
	Calls int
}

type engine struct {
	view       *hypergraph.RankView
	k          int
	order      ordering.Sequence
	filterKind filter.Kind
	summary    *bloom.Summary
	mode       Mode
	best       []int
	timedOut   *atomic.Bool
	sink       func([]int)
	trace      func(TraceEvent)
	calls      int
}

func (e *engine) filterContext() *filter.Context {
	return &filter.Context{View: e.view, Summary: e.summary, K: e.k, Order: e.order}
}

func (e *engine) emit(r []int) {
	clique := make([]int, len(r))
	copy(clique, r)
	sort.Ints(clique)

	switch e.mode {
	case FindAll:
		e.sink(clique)
	case FindMax:
		if len(clique) > len(e.best) {
			e.best = clique
			e.sink(clique)
		}
	}
}

func (e *engine) traceEvent(variant Variant, r, p, x []int) {
	if e.trace == nil {
		return
	}
	e.trace(TraceEvent{Variant: variant, R: append([]int{}, r...), PSize: len(p), XSize: len(x)})
}

// Run seeds R=∅, P=view's vertices (in order's sequence), X=∅ and
// dispatches to the chosen variant's recursion.
func Run(view *hypergraph.RankView, order ordering.Sequence, opts Options) Stats {
	e := &engine{
		view:       view,
		k:          view.K(),
		order:      order,
		filterKind: opts.Filter,
		summary:    opts.Summary,
		mode:       opts.Mode,
		timedOut:   opts.TimedOut,
		sink:       opts.Sink,
		trace:      opts.Trace,
	}
	if e.timedOut == nil {
		e.timedOut = new(atomic.Bool)
	}
	if e.sink == nil {
		e.sink = func([]int) {}
	}

	p := order.Sort(view.Vertices())

	switch opts.Variant {
	case HBK:
		e.runHBK(nil, p, nil)
	case HybridHBK:
		e.runHybridHBK(nil, p, nil)
	case CEHBK:
		e.runCEHBK(p)
	case NonUniform:
		e.runNonUniform(nil, p, nil)
	}

	return Stats{Calls: e.calls}
}

// removeVertex returns a copy of vs with v removed (first occurrence).
func removeVertex(vs []int, v int) []int {
	out := make([]int, 0, len(vs))
	for _, u := range vs {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}

func containsInt(vs []int, v int) bool {
	for _, u := range vs {
		if u == v {
			return true
		}
	}

	return false
}

// cliqueNeighbourhood restricts vertices to those sharing a live rank-k
// edge with v — the one filter every variant shares before recursing.
func cliqueNeighbourhood(view *hypergraph.RankView, vertices []int, v int) []int {
	nb := make(map[int]struct{})
	for _, u := range view.Neighbors(v) {
		nb[u] = struct{}{}
	}

	out := make([]int, 0, len(vertices))
	for _, u := range vertices {
		if _, ok := nb[u]; ok {
			out = append(out, u)
		}
	}

	return out
}

// ordCliqueNeighbourhood is cliqueNeighbourhood followed by a re-sort into
// order's sequence, so the result is in branching order rather than input
// order.
func ordCliqueNeighbourhood(order ordering.Sequence, view *hypergraph.RankView, vertices []int, v int) []int {
	return order.Sort(cliqueNeighbourhood(view, vertices, v))
}

// cliqueNbhdNonEmpty reports whether candidates contains a vertex that is
// both a rank-k neighbour of every vertex in r and already extends r into
// a set whose live rank-k edge count meets the binomial bound for a valid
// hyperclique one vertex larger — i.e. whether cliqueNbhd(r, candidates)
// is non-empty. Used by the hybrid variant's relaxed maximality test in
// place of a plain adjacency check.
func cliqueNbhdNonEmpty(view *hypergraph.RankView, r, candidates []int) bool {
	k := view.K()
	for _, u := range candidates {
		if !view.IsNeighbour(r, u) {
			continue
		}

		// Below k vertices no rank-k edge is required yet: C(|ru|, k) is 0.
		ru := append(append([]int{}, r...), u)
		if len(ru) < k || int64(len(view.EdgesWithin(ru))) >= hypergraph.Binomial(len(ru), k) {
			return true
		}
	}

	return false
}
