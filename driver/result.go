package driver

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mpelleau/hyperclique/hypergraph"
)

// RankStats reports one rank's contribution to a Run call — the data the
// out-of-scope JSON emitter would render, not rendered here.
type RankStats struct {
	Rank      int
	NBNodes   int
	NBEdges   int
	NBCliques int
	Calls     int
	Elapsed   time.Duration
}

// Result is the complete, structured handoff point for everything
// downstream of a search: a CLI summary printer, a JSON emitter, or a
// cardinality-constraint post-processor, none of which this package
// implements.
type Result struct {
	// Cliques holds every maximal hyperclique found, deduplicated, each
	// sorted ascending.
	Cliques [][]int

	// Stats holds one RankStats entry per rank searched, in descending
	// rank order (matching the search loop's own iteration order).
	Stats []RankStats

	TimedOut     bool
	TotalCalls   int
	TotalElapsed time.Duration

	hg *hypergraph.Hypergraph
}

// EdgeIDsOf returns the ids of active hyperedges, of any rank, whose vertex
// set is contained in clique — the mapping the out-of-scope
// cardinality-constraint transformation needs, exposed here as a pure
// accessor so that transformation can consume Result without reaching
// back into hypergraph internals.
func (r *Result) EdgeIDsOf(clique []int) map[int]struct{} {
	if r.hg == nil {
		return nil
	}

	return r.hg.EdgesWithin(clique)
}

func dedupCliques(cliques [][]int) [][]int {
	seen := make(map[string]struct{}, len(cliques))
	out := make([][]int, 0, len(cliques))
	for _, c := range cliques {
		cp := append([]int{}, c...)
		sort.Ints(cp)
		key := cliqueKey(cp)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cp)
	}

	return out
}

func cliqueKey(sorted []int) string {
	var b strings.Builder
	for _, v := range sorted {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
