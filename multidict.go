// Package multidict implements an ordered dictionary that allows
// multiple values for the same key.
//
// A MultiDict keeps every (key, value) pair in insertion order, duplicates
// included, which is what query strings, form data and header blocks need.
// Key lookups go through an index from key to the positions of its pairs,
// so they cost O(1) instead of a scan.
//
// A MultiDict is not safe for concurrent use.
package multidict

import (
	"iter"
	"slices"
	"strings"

	"github.com/mkch/gg"
)

// MultiDict is an ordered multi-valued mapping.
// The zero value is an empty MultiDict ready to use.
//
// Keys are compared with ==. A key that is not equal to itself,
// such as a NaN float, can be added but never found.
type MultiDict[K comparable, V any] struct {
	items []Pair[K, V] // source of truth for order and content
	index positions[K] // derived from items, see buildIndex
	// mutations counts modifications, checked by running iterators.
	mutations uint64
}

// New creates a MultiDict holding pairs, in order.
// Duplicate keys are kept.
func New[K comparable, V any](pairs ...Pair[K, V]) *MultiDict[K, V] {
	m := &MultiDict[K, V]{items: make([]Pair[K, V], 0, len(pairs))}
	for _, p := range pairs {
		m.add(p.Key, p.Value)
	}
	return m
}

// FromSeq2 creates a MultiDict holding the pairs of seq, in order.
func FromSeq2[K comparable, V any](seq iter.Seq2[K, V]) *MultiDict[K, V] {
	var m MultiDict[K, V]
	for key, value := range seq {
		m.add(key, value)
	}
	return &m
}

// FromMap creates a MultiDict with one pair per entry of src.
// The pairs are added in map iteration order, which is unspecified.
func FromMap[K comparable, V any](src map[K]V) *MultiDict[K, V] {
	m := &MultiDict[K, V]{items: make([]Pair[K, V], 0, len(src))}
	for key, value := range src {
		m.add(key, value)
	}
	return m
}

func (m *MultiDict[K, V]) add(key K, value V) {
	if m.index == nil {
		m.index = make(positions[K])
	}
	m.index[key] = append(m.index[key], len(m.items))
	m.items = append(m.items, Pair[K, V]{key, value})
	m.mutations++
}

// remove deletes the pairs at drop, which must be ascending and unique,
// then rebuilds the index from scratch.
func (m *MultiDict[K, V]) remove(drop []int) {
	j := drop[0]
	for i, d := drop[0], 0; i < len(m.items); i++ {
		if d < len(drop) && drop[d] == i {
			d++
			continue
		}
		m.items[j] = m.items[i]
		j++
	}
	clear(m.items[j:])
	m.items = m.items[:j]
	m.index = buildIndexCompact(m.items)
	m.mutations++
}

func (m *MultiDict[K, V]) values(pos []int) []V {
	values := make([]V, len(pos))
	for i, p := range pos {
		values[i] = m.items[p].Value
	}
	return values
}

// Len returns the number of pairs, counting every duplicate.
func (m *MultiDict[K, V]) Len() int {
	return len(m.items)
}

// KeyLen returns the number of distinct keys.
func (m *MultiDict[K, V]) KeyLen() int {
	return len(m.index)
}

// Contains reports whether key has at least one value.
func (m *MultiDict[K, V]) Contains(key K) bool {
	return len(m.index[key]) > 0
}

// Count returns the number of values of key.
func (m *MultiDict[K, V]) Count(key K) int {
	return len(m.index[key])
}

// ContainsItemFunc reports whether some value of key satisfies match.
// Only the pairs of key are visited.
func (m *MultiDict[K, V]) ContainsItemFunc(key K, match func(V) bool) bool {
	for _, i := range m.index[key] {
		if match(m.items[i].Value) {
			return true
		}
	}
	return false
}

// ContainsValueFunc reports whether any value of m satisfies match.
func (m *MultiDict[K, V]) ContainsValueFunc(match func(V) bool) bool {
	return slices.ContainsFunc(m.items, func(p Pair[K, V]) bool { return match(p.Value) })
}

// Lookup returns the first value of key.
func (m *MultiDict[K, V]) Lookup(key K) (value V, ok bool) {
	if pos := m.index[key]; len(pos) > 0 {
		return m.items[pos[0]].Value, true
	}
	return
}

// Get returns the first value of key.
// The error is a *KeyError if key is absent.
func (m *MultiDict[K, V]) Get(key K) (V, error) {
	value, ok := m.Lookup(key)
	if !ok {
		return value, keyNotFound(key)
	}
	return value, nil
}

// GetOne returns the first value of key, or def if key is absent.
func (m *MultiDict[K, V]) GetOne(key K, def V) V {
	if value, ok := m.Lookup(key); ok {
		return value
	}
	return def
}

// GetAll returns all values of key in insertion order.
// The returned slice is a copy.
func (m *MultiDict[K, V]) GetAll(key K) ([]V, error) {
	pos := m.index[key]
	if len(pos) == 0 {
		return nil, keyNotFound(key)
	}
	return m.values(pos), nil
}

// GetAllOr is like GetAll but returns def if key is absent.
func (m *MultiDict[K, V]) GetAllOr(key K, def []V) []V {
	if values, err := m.GetAll(key); err == nil {
		return values
	}
	return def
}

// Pairs returns a copy of all pairs in order.
func (m *MultiDict[K, V]) Pairs() []Pair[K, V] {
	return slices.Clone(m.items)
}

// Add appends a pair. Existing values of key are kept.
func (m *MultiDict[K, V]) Add(key K, value V) {
	m.add(key, value)
}

// Set replaces the first value of key and removes all other pairs of key.
// If key is absent, Set is Add.
func (m *MultiDict[K, V]) Set(key K, value V) {
	pos := m.index[key]
	if len(pos) == 0 {
		m.add(key, value)
		return
	}
	m.items[pos[0]].Value = value
	m.mutations++
	if len(pos) > 1 {
		m.remove(pos[1:])
	}
}

// SetDefault returns the first value of key.
// If key is absent, it adds (key, value) and returns value.
func (m *MultiDict[K, V]) SetDefault(key K, value V) V {
	if v, ok := m.Lookup(key); ok {
		return v
	}
	m.add(key, value)
	return value
}

// Delete removes all pairs of key.
// The error is a *KeyError if key is absent.
func (m *MultiDict[K, V]) Delete(key K) error {
	_, err := m.PopAll(key)
	return err
}

// PopOne removes the first pair of key and returns its value.
// Remaining pairs of key stay in place.
func (m *MultiDict[K, V]) PopOne(key K) (value V, err error) {
	pos := m.index[key]
	if len(pos) == 0 {
		err = keyNotFound(key)
		return
	}
	first := pos[0]
	value = m.items[first].Value
	if last := len(m.items) - 1; first == last {
		// The only pair of key is the last one, nothing shifts.
		m.items[last] = Pair[K, V]{}
		m.items = m.items[:last]
		delete(m.index, key)
		m.mutations++
	} else {
		m.remove(pos[:1])
	}
	return
}

// PopOneOr is like PopOne but returns def if key is absent.
func (m *MultiDict[K, V]) PopOneOr(key K, def V) V {
	if value, err := m.PopOne(key); err == nil {
		return value
	}
	return def
}

// PopAll removes all pairs of key and returns their values in order.
func (m *MultiDict[K, V]) PopAll(key K) ([]V, error) {
	pos := m.index[key]
	if len(pos) == 0 {
		return nil, keyNotFound(key)
	}
	values := m.values(pos)
	m.remove(pos)
	return values, nil
}

// PopAllOr is like PopAll but returns def if key is absent.
func (m *MultiDict[K, V]) PopAllOr(key K, def []V) []V {
	if values, err := m.PopAll(key); err == nil {
		return values
	}
	return def
}

// PopItem removes and returns the last pair.
func (m *MultiDict[K, V]) PopItem() (p Pair[K, V], err error) {
	last := len(m.items) - 1
	if last < 0 {
		err = ErrEmpty
		return
	}
	p = m.items[last]
	m.items[last] = Pair[K, V]{}
	m.items = m.items[:last]
	if pos := m.index[p.Key]; len(pos) > 1 {
		m.index[p.Key] = pos[:len(pos)-1]
	} else {
		delete(m.index, p.Key)
	}
	m.mutations++
	return
}

// Clear removes all pairs.
func (m *MultiDict[K, V]) Clear() {
	clear(m.items)
	m.items = m.items[:0]
	clear(m.index)
	m.mutations++
}

// Extend adds every pair of seq, in order.
func (m *MultiDict[K, V]) Extend(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		m.add(key, value)
	}
}

// Update calls Set for every pair of seq, in order.
// A key repeated in seq ends up with its last value.
// Each pair is fully applied before seq is resumed, so seq may read or
// modify m and sees the same state a loop of Set calls would leave.
func (m *MultiDict[K, V]) Update(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		m.Set(key, value)
	}
}

// Merge adds the pairs of seq whose key was absent before the call.
func (m *MultiDict[K, V]) Merge(seq iter.Seq2[K, V]) {
	added := make(gg.Set[K])
	for key, value := range seq {
		if !added.Contains(key) && m.Contains(key) {
			continue
		}
		added.Add(key)
		m.add(key, value)
	}
}

// Clone returns a copy of m.
// Keys and values are copied by assignment.
func (m *MultiDict[K, V]) Clone() *MultiDict[K, V] {
	items := slices.Clone(m.items)
	return &MultiDict[K, V]{items: items, index: buildIndexCompact(items)}
}

// String formats m as MultiDict[k1:v1 k2:v2 ...].
func (m *MultiDict[K, V]) String() string {
	var b strings.Builder
	b.WriteString("MultiDict[")
	for i, p := range m.items {
		b.WriteString(gg.If(i > 0, " ", ""))
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
