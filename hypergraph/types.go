// Package hypergraph stores hyperedges and answers the geometric queries the
// hyperclique search engine depends on: containment, neighbourhood, and
// "is this vertex set a hyperclique".
//
// A Hypergraph is built once from a caller-supplied vertex count and edge
// list (parsing text into that edge list is an external concern — see
// SPEC_FULL.md §10) and is immutable for the duration of a search, except
// that the CE-HBK search variant temporarily restricts the active edge set
// via Snapshot/Restore. No edge is ever removed from the underlying
// catalogue; restriction only toggles which ids are considered active.
package hypergraph

import (
	"errors"
	"sort"
)

// Sentinel errors for hypergraph construction and mutation.
var (
	// ErrEmptyHyperedge indicates an edge was added with no vertices.
	ErrEmptyHyperedge = errors.New("hypergraph: hyperedge has no vertices")

	// ErrDuplicateEdgeID indicates two hyperedges were added with the same id.
	ErrDuplicateEdgeID = errors.New("hypergraph: duplicate hyperedge id")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge id.
	ErrEdgeNotFound = errors.New("hypergraph: hyperedge not found")

	// ErrVertexOutOfRange indicates a vertex id outside [1, N].
	ErrVertexOutOfRange = errors.New("hypergraph: vertex id out of range")
)

// Hyperedge is an unordered set of distinct vertices with a stable external id.
type Hyperedge struct {
	// ID uniquely identifies this hyperedge within its Hypergraph.
	ID int

	// Vertices holds the edge's members, sorted ascending, no duplicates.
	Vertices []int
}

// Rank returns the hyperedge's size (its arity).
func (h *Hyperedge) Rank() int { return len(h.Vertices) }

// Hypergraph is the auxiliary index over a fixed vertex set and hyperedge
// catalogue: forward storage plus the inverse indices (by vertex, by rank)
// that make containment and neighbourhood queries fast.
type Hypergraph struct {
	nVertices int

	// catalogue is the immutable set of hyperedges ever added.
	catalogue map[int]*Hyperedge

	// active holds the ids currently considered part of the hypergraph.
	// CE-HBK verification narrows this temporarily via Snapshot/Restore.
	active map[int]struct{}

	// byVertex maps vertex -> set of incident active hyperedge ids.
	byVertex map[int]map[int]struct{}

	// byRank maps rank -> set of active hyperedge ids of that rank.
	byRank map[int]map[int]struct{}

	maxRank  int
	nextFree int // not used: AddEdge stores every id as given, including ids <= 0
}

// NewHypergraph creates an empty Hypergraph over vertices [1, nVertices].
// Complexity: O(nVertices).
func NewHypergraph(nVertices int) *Hypergraph {
	return &Hypergraph{
		nVertices: nVertices,
		catalogue: make(map[int]*Hyperedge),
		active:    make(map[int]struct{}),
		byVertex:  make(map[int]map[int]struct{}, nVertices),
		byRank:    make(map[int]map[int]struct{}),
	}
}

// NVertices returns the number of vertices the hypergraph was built over.
func (hg *Hypergraph) NVertices() int { return hg.nVertices }

// Edge looks up a hyperedge by id, active or not (the catalogue is
// immutable once added). Used by the non-uniform search variant, which
// needs each surviving edge's rank, not just its id.
func (hg *Hypergraph) Edge(id int) (*Hyperedge, bool) {
	e, ok := hg.catalogue[id]

	return e, ok
}

// MaxRank returns the largest rank among edges ever added to the hypergraph.
func (hg *Hypergraph) MaxRank() int { return hg.maxRank }

// AddEdge inserts a hyperedge with the given id and vertex list into the
// catalogue and activates it. Vertices are copied, sorted, and deduplicated.
// Returns ErrEmptyHyperedge for an empty list, ErrDuplicateEdgeID if id is
// already in the catalogue, ErrVertexOutOfRange if any vertex falls outside
// [1, NVertices()].
// Complexity: O(m log m) for an edge of arity m.
func (hg *Hypergraph) AddEdge(id int, vertices []int) error {
	if len(vertices) == 0 {
		return ErrEmptyHyperedge
	}
	if _, exists := hg.catalogue[id]; exists {
		return ErrDuplicateEdgeID
	}

	vs := dedupSorted(vertices)
	for _, v := range vs {
		if v < 1 || v > hg.nVertices {
			return ErrVertexOutOfRange
		}
	}

	edge := &Hyperedge{ID: id, Vertices: vs}
	hg.catalogue[id] = edge
	hg.activateLocked(edge)

	if r := edge.Rank(); r > hg.maxRank {
		hg.maxRank = r
	}

	return nil
}

// dedupSorted returns a sorted copy of vs with duplicates removed.
func dedupSorted(vs []int) []int {
	cp := make([]int, len(vs))
	copy(cp, vs)
	sort.Ints(cp)

	out := cp[:0:0]
	for i, v := range cp {
		if i == 0 || v != cp[i-1] {
			out = append(out, v)
		}
	}

	return out
}

func (hg *Hypergraph) activateLocked(edge *Hyperedge) {
	hg.active[edge.ID] = struct{}{}

	r := edge.Rank()
	if hg.byRank[r] == nil {
		hg.byRank[r] = make(map[int]struct{})
	}
	hg.byRank[r][edge.ID] = struct{}{}

	for _, v := range edge.Vertices {
		if hg.byVertex[v] == nil {
			hg.byVertex[v] = make(map[int]struct{})
		}
		hg.byVertex[v][edge.ID] = struct{}{}
	}
}

func (hg *Hypergraph) deactivateLocked(id int) {
	edge, ok := hg.catalogue[id]
	if !ok {
		return
	}
	delete(hg.active, id)
	if set := hg.byRank[edge.Rank()]; set != nil {
		delete(set, id)
	}
	for _, v := range edge.Vertices {
		if set := hg.byVertex[v]; set != nil {
			delete(set, id)
		}
	}
}

// RemoveEdge deactivates a hyperedge (it remains in the catalogue for a
// later RestoreEdge). Used only by CE-HBK verification. Returns
// ErrEdgeNotFound if id is not an active hyperedge.
// Complexity: O(rank(id)).
func (hg *Hypergraph) RemoveEdge(id int) error {
	if _, ok := hg.active[id]; !ok {
		return ErrEdgeNotFound
	}
	hg.deactivateLocked(id)

	return nil
}

// RestoreEdge reactivates a previously removed hyperedge without mutating
// the catalogue. Returns ErrEdgeNotFound if id was never added.
// Complexity: O(rank(id)).
func (hg *Hypergraph) RestoreEdge(id int) error {
	edge, ok := hg.catalogue[id]
	if !ok {
		return ErrEdgeNotFound
	}
	hg.activateLocked(edge)

	return nil
}

// Snapshot captures the currently active edge ids, for later Restore.
type Snapshot struct {
	ids map[int]struct{}
}

// Snapshot returns the set of currently active hyperedge ids.
// Complexity: O(active edge count).
func (hg *Hypergraph) Snapshot() Snapshot {
	cp := make(map[int]struct{}, len(hg.active))
	for id := range hg.active {
		cp[id] = struct{}{}
	}

	return Snapshot{ids: cp}
}

// Restore replaces the active edge set with the one captured by Snapshot.
// This is the "restriction = replace the active-set pointer" strategy from
// SPEC_FULL.md: no per-edge remove/add loop is needed to undo a restriction.
// Complexity: O(total active edge count, old + new).
func (hg *Hypergraph) Restore(snap Snapshot) {
	hg.active = make(map[int]struct{}, len(snap.ids))
	hg.byVertex = make(map[int]map[int]struct{}, hg.nVertices)
	hg.byRank = make(map[int]map[int]struct{})

	for id := range snap.ids {
		if edge, ok := hg.catalogue[id]; ok {
			hg.activateLocked(edge)
		}
	}
}

// RestrictTo deactivates every active edge not in keep, leaving exactly the
// ids in keep (that exist in the catalogue) active. Used by CE-HBK
// verification to narrow the hypergraph to one pseudo-clique's constituent
// edges before re-running HBK.
// Complexity: O(active edge count + len(keep)).
func (hg *Hypergraph) RestrictTo(keep map[int]struct{}) {
	newActive := make(map[int]struct{}, len(keep))
	hg.byVertex = make(map[int]map[int]struct{}, hg.nVertices)
	hg.byRank = make(map[int]map[int]struct{})
	hg.active = newActive

	for id := range keep {
		if edge, ok := hg.catalogue[id]; ok {
			hg.activateLocked(edge)
		}
	}
}
