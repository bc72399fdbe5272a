package flags

import (
	"flag"
	"io"
	"slices"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("multidict", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func Test_formatFlag(t *testing.T) {
	var f formatFlag
	if got := f.String(); got != FormatQuery {
		t.Fatal(got)
	}
	if err := f.Set(" Header "); err != nil {
		t.Fatal(err)
	}
	if got := f.String(); got != FormatHeader {
		t.Fatal(got)
	}
	if err := f.Set("json"); err == nil {
		t.Fatal("json should be rejected")
	}
	if got := f.String(); got != FormatHeader {
		t.Fatal(got)
	}
}

func Test_keysFlag_Set(t *testing.T) {
	var flag keysFlag
	if !flag.Empty() {
		t.Fatal("should be empty")
	}

	flag.Set("b")
	flag.Set("a, c,b")
	flag.Set("c,d")

	if flag.Empty() {
		t.Fatal("should not be empty")
	}
	if got, want := flag.Keys(), []string{"b", "a", "c", "d"}; !slices.Equal(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if got := flag.String(); got != "b,a,c,d" {
		t.Fatal(got)
	}
	if !flag.Contains("a") {
		t.Fatal("a")
	}
	if flag.Contains("e") {
		t.Fatal("e")
	}
	if len(flag.KeySet()) != 4 {
		t.Fatal(flag.KeySet())
	}
	if err := flag.Set("x,,y"); err == nil {
		t.Fatal("empty key should be rejected")
	}
}

func Test_editFlag_Set(t *testing.T) {
	var edits []Edit
	add := editFlag{OpAdd, &edits}
	tests := []struct {
		name    string
		flag    editFlag
		value   string
		want    Edit
		wantErr bool
	}{
		{"add", add, "a=1", Edit{OpAdd, "a", "1"}, false},
		{"add_empty_value", add, "a=", Edit{OpAdd, "a", ""}, false},
		{"add_equals_in_value", add, "a=b=c", Edit{OpAdd, "a", "b=c"}, false},
		{"add_no_equals", add, "a", Edit{}, true},
		{"add_empty_key", add, "=1", Edit{}, true},
		{"set", editFlag{OpSet, &edits}, "k=v", Edit{OpSet, "k", "v"}, false},
		{"del", editFlag{OpDelete, &edits}, "k", Edit{OpDelete, "k", ""}, false},
		{"del_empty", editFlag{OpDelete, &edits}, "", Edit{}, true},
		{"pop", editFlag{OpPop, &edits}, "k=v", Edit{OpPop, "k=v", ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(edits)
			err := tt.flag.Set(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				if len(edits) != n {
					t.Fatal("failed Set must not record an edit")
				}
				return
			}
			if got := edits[len(edits)-1]; got != tt.want {
				t.Errorf("Set(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func Test_Parse(t *testing.T) {
	flags, err := Parse(newFlagSet(), []string{
		"-f", "header",
		"-add", "a=1", "-del", "b", "-set", "c=3", "-add", "a=2", "-pop", "a",
		"-get", "a,c", "-getall", "a",
		"-v",
		"X-Input: 1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if flags.Format.String() != FormatHeader {
		t.Fatal(flags.Format)
	}
	want := []Edit{
		{OpAdd, "a", "1"},
		{OpDelete, "b", ""},
		{OpSet, "c", "3"},
		{OpAdd, "a", "2"},
		{OpPop, "a", ""},
	}
	if !slices.Equal(flags.Edits, want) {
		t.Fatalf("want %v, got %v", want, flags.Edits)
	}
	if !flags.Lookups() || !slices.Equal(flags.Get.Keys(), []string{"a", "c"}) {
		t.Fatal(flags.Get.Keys())
	}
	if !flags.Verbose || flags.Debug {
		t.Fatal("verbose only")
	}
	if add := (editFlag{OpAdd, &flags.Edits}).String(); add != "a=1,a=2" {
		t.Fatal(add)
	}
}

func Test_Parse_error(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"-format", "xml"}); err == nil {
		t.Fatal("want error")
	}
	if _, err := Parse(newFlagSet(), []string{"-add", "novalue"}); err == nil {
		t.Fatal("want error")
	}
}
