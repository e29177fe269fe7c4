// Package scanorder decides the order in which the local files of one
// directory are scanned.
package scanorder

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
)

const notebookExt = ".ipynb"

// Order returns the names of deps, a map from local package name to its
// local dependencies, in scan order. Files nothing else imports are peeled
// from the front and files that import nothing from the back, repeatedly,
// so importers come before the files they import. Nodes left on a cycle
// keep name order between the two ends. Dependencies outside deps are
// ignored.
func Order(deps map[string]domain.StringSet) []string {
	g := domain.NewGraph()
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		g.AddNode(name)
	}
	for _, name := range names {
		for _, dep := range deps[name].Sorted() {
			if dep != name && g.Has(dep) {
				g.AddEdge(name, dep)
			}
		}
	}

	p := newPeeler(g)
	var heads, tails []int
	for {
		if batch := p.take(p.noDependents, p.headKey); len(batch) > 0 {
			heads = append(heads, batch...)
			continue
		}
		if batch := p.take(p.noDependencies, p.tailKey); len(batch) > 0 {
			tails = append(tails, batch...)
			continue
		}
		break
	}

	order := make([]string, 0, g.Len())
	for _, id := range heads {
		order = append(order, g.Name(id))
	}
	for id := range g.Len() {
		if !p.removed[id] {
			order = append(order, g.Name(id))
		}
	}
	for i := len(tails) - 1; i >= 0; i-- {
		order = append(order, g.Name(tails[i]))
	}
	return order
}

// peeler holds the remaining adjacency while nodes are removed.
type peeler struct {
	g       *domain.Graph
	out     []map[int]struct{}
	in      []map[int]struct{}
	removed []bool
}

func newPeeler(g *domain.Graph) *peeler {
	p := &peeler{
		g:       g,
		out:     make([]map[int]struct{}, g.Len()),
		in:      make([]map[int]struct{}, g.Len()),
		removed: make([]bool, g.Len()),
	}
	for id := range g.Len() {
		p.out[id] = g.OutIDs(id)
		p.in[id] = g.InIDs(id)
	}
	return p
}

func (p *peeler) noDependents(id int) bool {
	return len(p.in[id]) == 0
}

func (p *peeler) noDependencies(id int) bool {
	return len(p.out[id]) == 0
}

// headKey ranks notebooks first, then files with more local imports.
func (p *peeler) headKey(a, b int) int {
	if c := cmp.Compare(p.isNotebook(a), p.isNotebook(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(len(p.out[a]), len(p.out[b])); c != 0 {
		return c
	}
	return cmp.Compare(p.g.Name(a), p.g.Name(b))
}

// tailKey ranks files imported by more local files first.
func (p *peeler) tailKey(a, b int) int {
	if c := cmp.Compare(len(p.in[a]), len(p.in[b])); c != 0 {
		return c
	}
	return cmp.Compare(p.g.Name(a), p.g.Name(b))
}

func (p *peeler) isNotebook(id int) int {
	if strings.HasSuffix(p.g.Name(id), notebookExt) {
		return 1
	}
	return 0
}

// take removes every remaining node matching pred, ordered by key descending.
func (p *peeler) take(pred func(int) bool, key func(a, b int) int) []int {
	var batch []int
	for id := range p.g.Len() {
		if !p.removed[id] && pred(id) {
			batch = append(batch, id)
		}
	}
	slices.SortFunc(batch, func(a, b int) int { return key(b, a) })

	for _, id := range batch {
		p.removed[id] = true
	}
	for _, id := range batch {
		for next := range p.out[id] {
			delete(p.in[next], id)
		}
		for prev := range p.in[id] {
			delete(p.out[prev], id)
		}
	}
	return batch
}
