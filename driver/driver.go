package driver

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/mpelleau/hyperclique/bloom"
	"github.com/mpelleau/hyperclique/filter"
	"github.com/mpelleau/hyperclique/hypergraph"
	"github.com/mpelleau/hyperclique/ordering"
	"github.com/mpelleau/hyperclique/search"
)

// Run searches hg for every maximal hyperclique of rank k, for k from
// hg.MaxRank() down to opts.MinRank, per opts's chosen variant, filter,
// ordering, node pre-filter, and mode. Run never prints and never exits
// the process: Result is the complete handoff to whatever external
// collaborator (CLI, JSON emitter, cardinality-constraint post-processor)
// consumes it.
func Run(hg *hypergraph.Hypergraph, opts Options) (*Result, error) {
	if err := opts.Validate(hg); err != nil {
		return nil, err
	}

	var timedOut atomic.Bool
	if opts.Timeout > 0 {
		timer := time.AfterFunc(opts.Timeout, func() { timedOut.Store(true) })
		defer timer.Stop()
	}

	rnd := rand.New(rand.NewSource(opts.Seed))

	var allCliques [][]int
	var stats []RankStats
	totalCalls := 0
	var totalElapsed time.Duration

	sink := func(c []int) { allCliques = append(allCliques, c) }

	for k := hg.MaxRank(); k >= opts.MinRank; k-- {
		if timedOut.Load() {
			break
		}

		start := time.Now()
		view := hg.RankView(k)

		trivialCliques := 0
		applyNodeFilters(view, k, opts.NodeFilter, func(c []int) {
			trivialCliques++
			sink(c)
		})

		liveEdges := view.Edges()
		rankStat := RankStats{Rank: k, NBNodes: len(view.Vertices()), NBEdges: len(liveEdges), NBCliques: trivialCliques}

		if len(liveEdges) <= k {
			for id := range liveEdges {
				edge, ok := hg.Edge(id)
				if !ok {
					continue
				}
				sink(append([]int{}, edge.Vertices...))
				rankStat.NBCliques++
			}
			rankStat.Elapsed = time.Since(start)
			stats = append(stats, rankStat)
			totalElapsed += rankStat.Elapsed

			continue
		}

		order := ordering.Compute(opts.Ordering, view, rnd)

		var summary *bloom.Summary
		if opts.Filter == filter.Bloom {
			summary = buildSummary(view, liveEdges, k)
		}

		cliquesThisRank := 0
		rankSink := func(c []int) {
			cliquesThisRank++
			sink(c)
		}

		searchStats := search.Run(view, order, search.Options{
			Variant:  opts.Variant,
			Filter:   opts.Filter,
			Mode:     opts.Mode,
			Summary:  summary,
			TimedOut: &timedOut,
			Sink:     rankSink,
			Trace:    opts.Trace,
		})

		rankStat.NBCliques += cliquesThisRank
		rankStat.Calls = searchStats.Calls
		rankStat.Elapsed = time.Since(start)
		stats = append(stats, rankStat)

		totalCalls += searchStats.Calls
		totalElapsed += rankStat.Elapsed
	}

	return &Result{
		Cliques:      dedupCliques(allCliques),
		Stats:        stats,
		TimedOut:     timedOut.Load(),
		TotalCalls:   totalCalls,
		TotalElapsed: totalElapsed,
		hg:           hg,
	}, nil
}

// buildSummary materializes a Bloom summary over a rank view's live
// edges, used only when opts.Filter == filter.Bloom.
func buildSummary(view *hypergraph.RankView, liveEdges map[int]struct{}, k int) *bloom.Summary {
	s := bloom.NewSummary()
	for id := range liveEdges {
		edge, ok := view.Hypergraph().Edge(id)
		if !ok {
			continue
		}
		s.Add(k, bloom.FingerprintOf(edge.Vertices))
	}

	return s
}
