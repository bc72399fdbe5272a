package multidict

import "iter"

// MultiMapping is the read-only view of an ordered multi-valued mapping.
type MultiMapping[K comparable, V any] interface {
	Get(key K) (V, error)
	GetOne(key K, def V) V
	GetAll(key K) ([]V, error)
	GetAllOr(key K, def []V) []V
	Lookup(key K) (V, bool)
	Contains(key K) bool
	ContainsItemFunc(key K, match func(V) bool) bool
	ContainsValueFunc(match func(V) bool) bool
	Len() int
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	All() iter.Seq2[K, V]
	Items() iter.Seq[Pair[K, V]]
}

// MutableMultiMapping is a MultiMapping that can be modified.
type MutableMultiMapping[K comparable, V any] interface {
	MultiMapping[K, V]
	Add(key K, value V)
	Set(key K, value V)
	SetDefault(key K, value V) V
	Delete(key K) error
	PopOne(key K) (V, error)
	PopOneOr(key K, def V) V
	PopAll(key K) ([]V, error)
	PopAllOr(key K, def []V) []V
	PopItem() (Pair[K, V], error)
	Clear()
	Extend(seq iter.Seq2[K, V])
	Update(seq iter.Seq2[K, V])
	Merge(seq iter.Seq2[K, V])
}

var _ MutableMultiMapping[string, any] = (*MultiDict[string, any])(nil)
