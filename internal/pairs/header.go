package pairs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strings"

	"github.com/mkch/multidict"
)

// MaxHeaderLine is the longest header line ParseHeader accepts, in bytes.
const MaxHeaderLine = 1 << 20

// ParseHeader reads "Key: value" lines up to EOF or the first blank line.
// Keys are canonicalized with textproto.CanonicalMIMEHeaderKey.
// Lines starting with a space or a tab continue the previous value.
// A line longer than MaxHeaderLine fails with multidict.ErrInvalidArgument.
func ParseHeader(r io.Reader) (*multidict.MultiDict[string, string], error) {
	var m multidict.MultiDict[string, string]
	var pending *multidict.Pair[string, string]
	flush := func() {
		if pending != nil {
			m.Add(pending.Key, pending.Value)
			pending = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, MaxHeaderLine)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if line[0] == ' ' || line[0] == '\t' {
			if pending == nil {
				return nil, fmt.Errorf("%w: line %d: continuation before any header", multidict.ErrInvalidArgument, n)
			}
			pending.Value += " " + strings.TrimSpace(line)
			continue
		}
		flush()
		key, value, ok := strings.Cut(line, ":")
		if key = strings.TrimSpace(key); !ok || key == "" {
			return nil, fmt.Errorf("%w: line %d: malformed header %q", multidict.ErrInvalidArgument, n, line)
		}
		pending = &multidict.Pair[string, string]{
			Key:   textproto.CanonicalMIMEHeaderKey(key),
			Value: strings.TrimSpace(value),
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: longer than %d bytes", multidict.ErrInvalidArgument, n+1, MaxHeaderLine)
		}
		return nil, err
	}
	flush()
	return &m, nil
}

// FormatHeader writes one "Key: value" line per pair of m, in order.
func FormatHeader(w io.Writer, m multidict.MultiMapping[string, string]) error {
	for key, value := range m.All() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}
