// Package driver orchestrates the per-rank search loop: build each rank
// view, pre-filter obviously-disqualified vertices, compute a branching
// order, invoke the chosen search variant, and aggregate results across
// every rank from the hypergraph's maximum down to Options.MinRank.
package driver

import (
	"errors"
	"time"

	"github.com/mpelleau/hyperclique/filter"
	"github.com/mpelleau/hyperclique/hypergraph"
	"github.com/mpelleau/hyperclique/ordering"
	"github.com/mpelleau/hyperclique/search"
)

// Sentinel errors for Options validation.
var (
	// ErrMinRankTooSmall indicates Options.MinRank is below 2.
	ErrMinRankTooSmall = errors.New("driver: MinRank must be at least 2")

	// ErrNegativeTimeout indicates Options.Timeout is negative.
	ErrNegativeTimeout = errors.New("driver: Timeout must not be negative")

	// ErrBloomUnsafe indicates filter.Bloom was selected over a
	// hypergraph with more active vertices than the fingerprint can
	// safely summarize.
	ErrBloomUnsafe = errors.New("driver: Bloom filter is unsafe above filter.MaxBloomVertices active vertices")
)

// Options configures a single Run call: variant, filter, ordering, node
// pre-filter, and mode are each selected by an enum-typed field.
type Options struct {
	Variant    search.Variant
	Filter     filter.Kind
	Ordering   ordering.Kind
	NodeFilter NodeFilterKind
	Mode       search.Mode

	// Timeout bounds the whole Run call; zero means no limit.
	Timeout time.Duration

	// MinRank is the smallest rank searched, inclusive; search proceeds
	// from the hypergraph's MaxRank() down to MinRank.
	MinRank int

	// Seed feeds ordering.Compute's *rand.Rand when Ordering ==
	// ordering.Random.
	Seed int64

	// Trace, if set, receives every search observation point across
	// every rank's search.
	Trace func(search.TraceEvent)
}

// DefaultOptions returns the conservative default configuration: the
// exact baseline HBK variant, no candidate pruning, natural ordering, no
// node pre-filter, FindAll mode, no timeout, MinRank 2.
func DefaultOptions() Options {
	return Options{
		Variant:    search.HBK,
		Filter:     filter.None,
		Ordering:   ordering.Natural,
		NodeFilter: NodeFilterNone,
		Mode:       search.FindAll,
		Timeout:    0,
		MinRank:    2,
		Seed:       1,
	}
}

// Validate rejects configurations that can never run correctly: MinRank
// below 2, a negative Timeout, and filter.Bloom selected over a
// hypergraph with more active vertices than its 128-bit fingerprints can
// safely summarize (see DESIGN.md's Open Question decision unifying this
// gate in one place, rather than an inconsistent per-call-site guard).
func (o Options) Validate(hg *hypergraph.Hypergraph) error {
	if o.MinRank < 2 {
		return ErrMinRankTooSmall
	}
	if o.Timeout < 0 {
		return ErrNegativeTimeout
	}
	if o.Filter == filter.Bloom && hg.ActiveVertexCount() > filter.MaxBloomVertices {
		return ErrBloomUnsafe
	}

	return nil
}
