package multidict

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllOrder(t *testing.T) {
	var m MultiDict[string, int]
	want := []Pair[string, int]{P("x", 0), P("y", 1), P("x", 2), P("z", 3), P("x", 4)}
	for _, p := range want {
		m.Add(p.Key, p.Value)
	}
	var got []Pair[string, int]
	for k, v := range m.All() {
		got = append(got, P(k, v))
	}
	require.Equal(t, want, got)
	require.Equal(t, want, slices.Collect(m.Items()))
}

func TestIteratorsAreLive(t *testing.T) {
	m := abc()
	keys := m.Keys()
	require.Equal(t, []string{"a", "b", "a"}, slices.Collect(keys))
	m.Add("c", 4)
	// Ranging again sees the current pairs.
	require.Equal(t, []string{"a", "b", "a", "c"}, slices.Collect(keys))
}

func TestIteratorStopsEarly(t *testing.T) {
	m := abc()
	var n int
	for range m.Values() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestMutationDuringIteration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *MultiDict[string, int])
	}{
		{"add", func(m *MultiDict[string, int]) { m.Add("z", 0) }},
		{"set_value", func(m *MultiDict[string, int]) { m.Set("b", 0) }},
		{"set_collapse", func(m *MultiDict[string, int]) { m.Set("a", 0) }},
		{"delete", func(m *MultiDict[string, int]) { _ = m.Delete("b") }},
		{"pop_one", func(m *MultiDict[string, int]) { _, _ = m.PopOne("a") }},
		{"pop_item", func(m *MultiDict[string, int]) { _, _ = m.PopItem() }},
		{"clear", func(m *MultiDict[string, int]) { m.Clear() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := abc()
			require.PanicsWithValue(t, ErrMutatedDuringIteration, func() {
				for range m.Keys() {
					tt.mutate(m)
				}
			})
			requireConsistent(t, m)
		})
	}
}

func TestReadDuringIteration(t *testing.T) {
	m := abc()
	require.NotPanics(t, func() {
		for k := range m.Keys() {
			_ = m.GetAllOr(k, nil)
			_ = m.Contains(k)
			_ = m.GetOne(k, 0)
		}
	})
}

func TestUniqueKeys(t *testing.T) {
	m := New(P("b", 0), P("a", 1), P("b", 2), P("c", 3), P("a", 4))
	require.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.UniqueKeys()))
	// restartable
	require.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.UniqueKeys()))
	require.Empty(t, slices.Collect(New[string, int]().UniqueKeys()))
}
