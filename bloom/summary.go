package bloom

// Summary is a Bloom summary of a hypergraph's hyperedges, bucketed by
// rank, supporting the superset-counting query the Bloom candidate filter
// depends on (SPEC_FULL.md §4 / spec.md §4.2).
type Summary struct {
	buckets map[int]map[Fingerprint]int
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{buckets: make(map[int]map[Fingerprint]int)}
}

// Add records fp in the bucket for rank. Equal fingerprints collapse into
// one bucket entry with a multiplicity count, since distinct hyperedges
// with the same fingerprint are indistinguishable to this structure by
// design (it is a lossy summary, not an edge catalogue).
// Complexity: O(1) amortized.
func (s *Summary) Add(rank int, fp Fingerprint) {
	if s.buckets[rank] == nil {
		s.buckets[rank] = make(map[Fingerprint]int)
	}
	s.buckets[rank][fp]++
}

// Clear empties the summary.
func (s *Summary) Clear() {
	s.buckets = make(map[int]map[Fingerprint]int)
}

// CountSupersets returns the number of fingerprints f recorded in the
// rank bucket with f & fp(S) == f, i.e. f is a subset of S as bitsets.
// This is an upper bound on the number of rank-k hyperedges contained in S:
// distinct vertices congruent mod 128 can make a hyperedge that is not a
// subset of S look like one, but a genuine subset is never missed.
// Complexity: O(bucket size).
func (s *Summary) CountSupersets(fp Fingerprint, rank int) int {
	total := 0
	for member, count := range s.buckets[rank] {
		if member.IsSubsetOf(fp) {
			total += count
		}
	}

	return total
}

// AnySubsetOfAnyRank reports whether some fingerprint, in any rank bucket,
// is a subset of fp.
// Complexity: O(total fingerprint count).
func (s *Summary) AnySubsetOfAnyRank(fp Fingerprint) bool {
	for _, bucket := range s.buckets {
		for member := range bucket {
			if member.IsSubsetOf(fp) {
				return true
			}
		}
	}

	return false
}
