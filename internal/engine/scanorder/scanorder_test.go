package scanorder_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/engine/scanorder"
)

func edges(m map[string][]string) map[string]domain.StringSet {
	out := make(map[string]domain.StringSet, len(m))
	for name, deps := range m {
		out[name] = domain.NewStringSet(deps...)
	}
	return out
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		deps map[string][]string
		want []string
	}{
		{
			name: "empty",
			deps: map[string][]string{},
			want: []string{},
		},
		{
			name: "importers come before what they import",
			deps: map[string][]string{
				"./main.py":   {"./helper.py"},
				"./helper.py": {"./util.py"},
				"./util.py":   {},
			},
			want: []string{"./main.py", "./helper.py", "./util.py"},
		},
		{
			name: "notebooks lead, then files with more imports",
			deps: map[string][]string{
				"./nb.ipynb":  {"./lib.py"},
				"./script.py": {"./lib.py"},
				"./other.py":  {},
				"./lib.py":    {},
			},
			want: []string{"./nb.ipynb", "./script.py", "./other.py", "./lib.py"},
		},
		{
			name: "two-file cycle keeps name order",
			deps: map[string][]string{
				"./b.py": {"./a.py"},
				"./a.py": {"./b.py"},
			},
			want: []string{"./a.py", "./b.py"},
		},
		{
			name: "cycle between heads and tails",
			deps: map[string][]string{
				"./x.py": {"./a.py"},
				"./d.py": {"./c.py"},
				"./a.py": {"./b.py", "./c.py"},
				"./b.py": {"./a.py"},
				"./c.py": {},
			},
			want: []string{"./x.py", "./d.py", "./a.py", "./b.py", "./c.py"},
		},
		{
			name: "tails are emitted reversed",
			deps: map[string][]string{
				"./a.py": {"./b.py", "./c.py", "./d.py"},
				"./b.py": {"./a.py", "./d.py"},
				"./c.py": {},
				"./d.py": {},
			},
			want: []string{"./a.py", "./b.py", "./c.py", "./d.py"},
		},
		{
			name: "self and non-local edges are ignored",
			deps: map[string][]string{
				"./a.py": {"./a.py", "numpy"},
			},
			want: []string{"./a.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanorder.Order(edges(tt.deps))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Order() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrder_AcyclicImportersFirst(t *testing.T) {
	deps := edges(map[string][]string{
		"./app.ipynb":  {"./model.py", "./plot.R"},
		"./model.py":   {"./data.py", "./helpers"},
		"./helpers":    {"./data.py"},
		"./plot.R":     {},
		"./data.py":    {},
		"./standalone": {},
	})

	got := scanorder.Order(deps)

	if len(got) != len(deps) {
		t.Fatalf("Order() returned %d names, want %d", len(got), len(deps))
	}
	for importer, imported := range deps {
		for dep := range imported {
			if slices.Index(got, importer) > slices.Index(got, dep) {
				t.Errorf("%s scanned after its import %s in %v", importer, dep, got)
			}
		}
	}
}
