package multidict

import (
	"iter"

	"github.com/mkch/gg"
	"github.com/mkch/iter2"
)

// All returns an iterator over all pairs in insertion order.
// The iterator reads m lazily and may be ranged over again.
// It panics with ErrMutatedDuringIteration if m is modified
// before the iteration finishes.
func (m *MultiDict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mutations := m.mutations
		for i := 0; i < len(m.items); i++ {
			p := m.items[i]
			if !yield(p.Key, p.Value) {
				return
			}
			if m.mutations != mutations {
				panic(ErrMutatedDuringIteration)
			}
		}
	}
}

// Items is like All but yields Pairs.
func (m *MultiDict[K, V]) Items() iter.Seq[Pair[K, V]] {
	return iter2.Map2To1(m.All(), P[K, V])
}

// Keys returns an iterator over the key of every pair.
// A key with n values is yielded n times.
func (m *MultiDict[K, V]) Keys() iter.Seq[K] {
	return iter2.Map2To1(m.All(), func(key K, _ V) K { return key })
}

// Values returns an iterator over all values in insertion order.
func (m *MultiDict[K, V]) Values() iter.Seq[V] {
	return iter2.Map2To1(m.All(), func(_ K, value V) V { return value })
}

// UniqueKeys returns an iterator over distinct keys,
// in the order of their first occurrence.
func (m *MultiDict[K, V]) UniqueKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		seen := make(gg.Set[K], len(m.index))
		first := func(key K) bool {
			if seen.Contains(key) {
				return false
			}
			seen.Add(key)
			return true
		}
		for key := range iter2.Filter(m.Keys(), first) {
			if !yield(key) {
				return
			}
		}
	}
}
