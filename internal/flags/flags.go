package flags

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkch/gg"
)

type Flags struct {
	Format  formatFlag
	File    string
	Get     keysFlag
	GetAll  keysFlag
	Only    keysFlag
	Edits   []Edit
	Debug   bool
	Verbose bool
}

// Lookups reports whether any -get or -getall flag was given.
func (f *Flags) Lookups() bool {
	return !f.Get.Empty() || !f.GetAll.Empty()
}

const (
	FormatQuery  = "query"
	FormatHeader = "header"
)

type formatFlag string

func (f *formatFlag) Set(value string) error {
	switch value = strings.ToLower(strings.TrimSpace(value)); value {
	case FormatQuery, FormatHeader:
		*f = formatFlag(value)
		return nil
	}
	return fmt.Errorf("invalid argument: %v", value)
}

func (f *formatFlag) String() string {
	if f == nil || *f == "" {
		return FormatQuery
	}
	return string(*f)
}

// keysFlag is an ordered list of unique keys.
type keysFlag struct {
	keys []string
	set  gg.Set[string]
}

func (f *keysFlag) Set(value string) error {
	for key := range strings.SplitSeq(value, ",") {
		if err := f.setKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (f *keysFlag) setKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("invalid argument: empty key")
	}
	if f.set == nil {
		f.set = make(gg.Set[string])
	}
	if f.set.Contains(key) {
		return nil
	}
	f.set.Add(key)
	f.keys = append(f.keys, key)
	return nil
}

// Keys returns the keys in the order they were first given.
func (f *keysFlag) Keys() []string {
	return f.keys
}

func (f *keysFlag) Contains(key string) bool {
	return f.set.Contains(key)
}

// KeySet returns the keys as a set.
func (f *keysFlag) KeySet() gg.Set[string] {
	return f.set
}

func (f *keysFlag) Empty() bool {
	return len(f.keys) == 0
}

func (f *keysFlag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.keys, ",")
}

type Op int

const (
	OpAdd Op = iota
	OpSet
	OpDelete
	OpPop
)

var opNames = [...]string{OpAdd: "add", OpSet: "set", OpDelete: "del", OpPop: "pop"}

func (op Op) String() string {
	return opNames[op]
}

// Edit is one modification requested on the command line.
type Edit struct {
	Op    Op
	Key   string
	Value string // OpAdd and OpSet only
}

// editFlag appends edits of one kind to a list shared by all edit flags,
// so edits keep their command line order.
type editFlag struct {
	op    Op
	edits *[]Edit
}

func (f editFlag) Set(value string) error {
	edit := Edit{Op: f.op}
	switch f.op {
	case OpAdd, OpSet:
		key, val, ok := strings.Cut(value, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid argument: %v, want key=value", value)
		}
		edit.Key, edit.Value = key, val
	default:
		if value == "" {
			return fmt.Errorf("invalid argument: empty key")
		}
		edit.Key = value
	}
	*f.edits = append(*f.edits, edit)
	return nil
}

func (f editFlag) String() string {
	if f.edits == nil {
		return ""
	}
	var s []string
	for _, edit := range *f.edits {
		if edit.Op != f.op {
			continue
		}
		s = append(s, gg.If(f.op == OpAdd || f.op == OpSet, edit.Key+"="+edit.Value, edit.Key))
	}
	return strings.Join(s, ",")
}

//go:embed usage.txt
var usage string

// Parse parses args with fs.
func Parse(fs *flag.FlagSet, args []string) (*Flags, error) {
	var flags Flags
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.Var(&flags.Format, "format", "Input and output format: query or header.")
	fs.Var(&flags.Format, "f", "Alias for -format.")
	fs.StringVar(&flags.File, "file", "", "Read input from file instead of the argument or stdin.")
	fs.Var(&flags.Get, "get", "Print the first value of keys.\nKeys can be listed with commas or specified via repeated -get flags.")
	fs.Var(&flags.GetAll, "getall", "Print all values of keys, one per line.")
	fs.Var(&flags.Only, "only", "Keep only pairs with these keys.")
	fs.Var(editFlag{OpAdd, &flags.Edits}, "add", "Append a key=value pair. May be repeated.")
	fs.Var(editFlag{OpSet, &flags.Edits}, "set", "Replace all values of key with one key=value pair. May be repeated.")
	fs.Var(editFlag{OpDelete, &flags.Edits}, "del", "Remove all values of key. May be repeated.")
	fs.Var(editFlag{OpPop, &flags.Edits}, "pop", "Remove the first value of key. May be repeated.")
	fs.BoolVar(&flags.Debug, "debug", false, "Enable debug mode.")
	fs.BoolVar(&flags.Verbose, "v", false, "Enable verbose mode.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &flags, nil
}

// Init parses the command line.
func Init() *Flags {
	// flag.CommandLine exits by itself on parse errors.
	return gg.Must(Parse(flag.CommandLine, os.Args[1:]))
}
