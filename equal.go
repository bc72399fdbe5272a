package multidict

// Equal reports whether a and b hold the same pairs in the same order.
func Equal[K, V comparable](a, b *MultiDict[K, V]) bool {
	return EqualFunc(a, b, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal but compares values with eq.
// Keys are still compared with ==.
func EqualFunc[K comparable, V1, V2 any](a *MultiDict[K, V1], b *MultiDict[K, V2], eq func(V1, V2) bool) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i, p := range a.items {
		if q := b.items[i]; p.Key != q.Key || !eq(p.Value, q.Value) {
			return false
		}
	}
	return true
}

// ContainsItem reports whether m holds the pair (key, value).
func ContainsItem[K, V comparable](m *MultiDict[K, V], key K, value V) bool {
	return m.ContainsItemFunc(key, func(v V) bool { return v == value })
}

// ContainsValue reports whether value is stored under any key of m.
func ContainsValue[K, V comparable](m *MultiDict[K, V], value V) bool {
	return m.ContainsValueFunc(func(v V) bool { return v == value })
}
