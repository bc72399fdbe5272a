package multidict

// positions maps a key to the ascending indexes of its pairs.
type positions[K comparable] map[K][]int

// buildIndex is the reference index construction: one scan, appending
// every index to the list of its key.
func buildIndex[K comparable, V any](items []Pair[K, V]) positions[K] {
	index := make(positions[K])
	for i, p := range items {
		index[p.Key] = append(index[p.Key], i)
	}
	return index
}

// buildIndexCompact builds the same index as buildIndex.
// All position lists share one backing array of len(items) ints,
// each list capped at its own length so a later append reallocates
// instead of overwriting the next key's window.
func buildIndexCompact[K comparable, V any](items []Pair[K, V]) positions[K] {
	counts := make(map[K]int)
	for _, p := range items {
		counts[p.Key]++
	}
	index := make(positions[K], len(counts))
	backing := make([]int, len(items))
	var off int
	for i, p := range items {
		list, ok := index[p.Key]
		if !ok {
			n := counts[p.Key]
			list = backing[off : off : off+n]
			off += n
		}
		index[p.Key] = append(list, i)
	}
	return index
}
