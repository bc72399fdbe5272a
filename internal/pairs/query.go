// Package pairs converts query strings and header blocks to and from MultiDicts,
// keeping the order and repetition of their keys.
package pairs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mkch/gg"
	"github.com/mkch/gg/slices2"
	"github.com/mkch/multidict"
)

// ParseQuery parses a URL query string such as "a=1&b=2&a=3".
// A segment without "=" has an empty value. Empty segments are skipped.
// Semicolons are rejected, as net/url does.
func ParseQuery(query string) (*multidict.MultiDict[string, string], error) {
	var m multidict.MultiDict[string, string]
	for segment := range strings.SplitSeq(strings.TrimPrefix(query, "?"), "&") {
		if segment == "" {
			continue
		}
		if strings.Contains(segment, ";") {
			return nil, fmt.Errorf("%w: semicolon in query segment %q", multidict.ErrInvalidArgument, segment)
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: query segment %q: %v", multidict.ErrInvalidArgument, segment, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: query segment %q: %v", multidict.ErrInvalidArgument, segment, err)
		}
		m.Add(key, value)
	}
	return &m, nil
}

// FormatQuery encodes m as a query string, pairs in order.
func FormatQuery(m multidict.MultiMapping[string, string]) string {
	var b strings.Builder
	for key, value := range m.All() {
		b.WriteString(gg.If(b.Len() > 0, "&", ""))
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// Only returns a new MultiDict with the pairs of m whose key is in keys.
func Only[V any](m *multidict.MultiDict[string, V], keys gg.Set[string]) *multidict.MultiDict[string, V] {
	return multidict.New(slices2.Filter(m.Pairs(), func(p multidict.Pair[string, V]) bool {
		return keys.Contains(p.Key)
	})...)
}
