package ordering

import "github.com/mpelleau/hyperclique/hypergraph"

// computeDegeneracy orders vertices by iterative k-core peeling: for
// k=1,2,..., repeatedly remove every remaining vertex whose current degree
// is below k, appending it to the order, decrementing each neighbour's
// remaining degree as it goes, until every vertex has been appended.
//
// This is a bucketed structure (buckets indexed by remaining degree) rather
// than a generic priority queue, to realize spec.md §4.3's O(V+E) bound the
// way original_source/DegenerencyOrderingAlgorithm.cc's double-buffered
// node maps do: that file peels at a fixed k across rounds, redistributing
// into a pair of "to delete next" buffers instead of re-heapifying. Here we
// keep one bucket-by-degree array and, each time a vertex's degree drops,
// move it down a bucket in O(1), which gives the same total O(V+E) cost
// with a single pass rather than the two-buffer ping-pong.
// Complexity: O(V+E).
func computeDegeneracy(view *hypergraph.RankView) Sequence {
	vs := view.Vertices()
	n := len(vs)
	if n == 0 {
		return Sequence{}
	}

	degree := make(map[int]int, n)
	maxDeg := 0
	for _, v := range vs {
		d := len(view.Neighbors(v))
		degree[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	// buckets[d] holds vertices currently believed to have remaining degree d.
	buckets := make([][]int, maxDeg+1)
	posInBucket := make(map[int]int, n) // vertex -> index within its bucket slice
	bucketOf := make(map[int]int, n)    // vertex -> current bucket index
	removed := make(map[int]bool, n)

	for _, v := range vs {
		d := degree[v]
		bucketOf[v] = d
		posInBucket[v] = len(buckets[d])
		buckets[d] = append(buckets[d], v)
	}

	order := make([]int, 0, n)
	cur := 0
	for len(order) < n {
		for cur <= maxDeg && len(buckets[cur]) == 0 {
			cur++
		}
		if cur > maxDeg {
			break
		}

		b := buckets[cur]
		v := b[len(b)-1]
		buckets[cur] = b[:len(b)-1]
		removed[v] = true
		order = append(order, v)

		for _, u := range view.Neighbors(v) {
			if removed[u] {
				continue
			}
			oldBucket := bucketOf[u]
			removeFromBucket(buckets, posInBucket, oldBucket, u)
			newBucket := oldBucket - 1
			degree[u] = newBucket
			bucketOf[u] = newBucket
			posInBucket[u] = len(buckets[newBucket])
			buckets[newBucket] = append(buckets[newBucket], u)
			if newBucket < cur {
				cur = newBucket // a neighbour's degree can drop below the current level
			}
		}
	}

	return sequenceFromOrder(order)
}

// removeFromBucket deletes vertex v from buckets[idx] via swap-with-last,
// keeping posInBucket consistent for the vertex that moved into v's slot.
func removeFromBucket(buckets [][]int, posInBucket map[int]int, idx int, v int) {
	b := buckets[idx]
	p := posInBucket[v]
	last := len(b) - 1
	b[p] = b[last]
	posInBucket[b[p]] = p
	buckets[idx] = b[:last]
}
