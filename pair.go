package multidict

import (
	"fmt"
	"iter"
)

// Pair is a single entry of a MultiDict.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is a shorthand for Pair[K, V]{key, value}.
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key, value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.Key, p.Value)
}

// Seq returns an iterator over pairs, in order.
// It adapts a pair list to Extend, Update, Merge and FromSeq2.
func Seq[K comparable, V any](pairs ...Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Zip pairs keys[i] with values[i].
// The lengths of keys and values must be equal.
func Zip[K comparable, V any](keys []K, values []V) (*MultiDict[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys but %d values", ErrInvalidArgument, len(keys), len(values))
	}
	m := &MultiDict[K, V]{items: make([]Pair[K, V], 0, len(keys))}
	for i, key := range keys {
		m.add(key, values[i])
	}
	return m, nil
}
