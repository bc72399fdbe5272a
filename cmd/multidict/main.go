package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/textproto"
	"os"
	"strings"

	"github.com/mkch/gg"
	"github.com/mkch/multidict"
	"github.com/mkch/multidict/internal/flags"
	"github.com/mkch/multidict/internal/pairs"
)

var cmdArgs *flags.Flags

func main() {
	cmdArgs = flags.Init()
	logLevel := slog.LevelWarn
	if cmdArgs.Debug {
		logLevel = slog.LevelDebug
	} else if cmdArgs.Verbose {
		logLevel = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(logLevel)

	slog.Debug("debug mode")

	args := flag.Args()
	if len(args) > 1 || (len(args) == 1 && cmdArgs.File != "") {
		slog.Error("at most one input is allowed")
		os.Exit(1)
	}

	input, err := openInput(args)
	if err == nil {
		err = run(cmdArgs, input, os.Stdout)
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(2)
	}
	slog.Info("done.")
}

func openInput(args []string) (io.Reader, error) {
	if len(args) == 1 {
		return strings.NewReader(args[0]), nil
	}
	if cmdArgs.File == "" {
		slog.Info("reading stdin...")
		return os.Stdin, nil
	}
	return readFile(cmdArgs.File)
}

func readFile(name string) (r io.Reader, err error) {
	slog.Info("reading file...", "path", name)
	f, err := os.Open(name)
	if err != nil {
		return
	}
	defer gg.ChainError(f.Close, &err)
	content, err := io.ReadAll(f)
	if err != nil {
		return
	}
	return strings.NewReader(string(content)), nil
}

// keyNormalizer returns how keys given on the command line are matched
// against the keys of format.
func keyNormalizer(format string) func(string) string {
	if format == flags.FormatHeader {
		return textproto.CanonicalMIMEHeaderKey
	}
	return func(key string) string { return key }
}

func parse(format string, r io.Reader) (*multidict.MultiDict[string, string], error) {
	if format == flags.FormatHeader {
		return pairs.ParseHeader(r)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return pairs.ParseQuery(strings.TrimSpace(string(content)))
}

func run(args *flags.Flags, input io.Reader, w io.Writer) error {
	format := args.Format.String()
	m, err := parse(format, input)
	if err != nil {
		return err
	}
	slog.Info("parsed input", "format", format, "pairs", m.Len(), "keys", m.KeyLen())

	normalize := keyNormalizer(format)
	for _, edit := range args.Edits {
		if err := apply(m, edit, normalize); err != nil {
			return err
		}
	}

	if !args.Only.Empty() {
		keys := make(gg.Set[string])
		for _, key := range args.Only.Keys() {
			keys.Add(normalize(key))
		}
		m = pairs.Only(m, keys)
		slog.Debug("filtered pairs", "only", args.Only.String(), "pairs", m.Len())
	}

	if args.Lookups() {
		return lookup(w, m, args, normalize)
	}
	if format == flags.FormatHeader {
		return pairs.FormatHeader(w, m)
	}
	_, err = fmt.Fprintln(w, pairs.FormatQuery(m))
	return err
}

func apply(m *multidict.MultiDict[string, string], edit flags.Edit, normalize func(string) string) error {
	key := normalize(edit.Key)
	slog.Debug("applying edit", "op", edit.Op, "key", key, "value", edit.Value)
	var err error
	switch edit.Op {
	case flags.OpAdd:
		m.Add(key, edit.Value)
	case flags.OpSet:
		m.Set(key, edit.Value)
	case flags.OpDelete:
		err = m.Delete(key)
	case flags.OpPop:
		_, err = m.PopOne(key)
	default:
		return fmt.Errorf("unknown edit %v", edit.Op)
	}
	if errors.Is(err, multidict.ErrKeyNotFound) {
		slog.Warn("skipping edit of missing key", "op", edit.Op, "key", key)
		return nil
	}
	return err
}

func lookup(w io.Writer, m *multidict.MultiDict[string, string], args *flags.Flags, normalize func(string) string) error {
	for _, key := range args.Get.Keys() {
		key = normalize(key)
		value, err := m.Get(key)
		if err != nil {
			slog.Warn("key not found", "key", key)
			continue
		}
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	for _, key := range args.GetAll.Keys() {
		key = normalize(key)
		for _, value := range m.GetAllOr(key, nil) {
			if _, err := fmt.Fprintln(w, value); err != nil {
				return err
			}
		}
	}
	return nil
}
