package domain

import "iter"

// Graph is a directed graph over named nodes stored as index-based adjacency.
// Edges point from a dependent to its dependency. Cycles are allowed.
type Graph struct {
	names []string
	ids   map[string]int
	out   []map[int]struct{}
	in    []map[int]struct{}
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		ids: make(map[string]int),
	}
}

// AddNode adds name to the graph and returns its id. Adding an existing
// node returns the id it already has.
func (g *Graph) AddNode(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := len(g.names)
	g.names = append(g.names, name)
	g.ids[name] = id
	g.out = append(g.out, make(map[int]struct{}))
	g.in = append(g.in, make(map[int]struct{}))
	return id
}

// AddEdge adds an edge from -> to, adding either node when missing.
func (g *Graph) AddEdge(from, to string) {
	f := g.AddNode(from)
	t := g.AddNode(to)
	g.out[f][t] = struct{}{}
	g.in[t][f] = struct{}{}
}

// Has reports whether name is a node.
func (g *Graph) Has(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.names)
}

// Name returns the name of the node with the given id.
func (g *Graph) Name(id int) string {
	return g.names[id]
}

// ID returns the id of name.
func (g *Graph) ID(name string) (int, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// Nodes yields node names in insertion order.
func (g *Graph) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range g.names {
			if !yield(name) {
				return
			}
		}
	}
}

// Successors returns the dependencies of name.
func (g *Graph) Successors(name string) StringSet {
	return g.neighbors(g.out, name)
}

// Predecessors returns the dependents of name.
func (g *Graph) Predecessors(name string) StringSet {
	return g.neighbors(g.in, name)
}

// OutIDs returns a copy of the outgoing adjacency of id.
func (g *Graph) OutIDs(id int) map[int]struct{} {
	return cloneIDs(g.out[id])
}

// InIDs returns a copy of the incoming adjacency of id.
func (g *Graph) InIDs(id int) map[int]struct{} {
	return cloneIDs(g.in[id])
}

// Closure returns every node reachable from start along dependency edges,
// start included. Names that are not nodes are ignored.
func (g *Graph) Closure(start StringSet) StringSet {
	return g.reach(g.out, start, nil)
}

// ReverseReach walks dependent edges starting from the members of start.
// Nodes in stopAt are collected but not expanded. Start nodes are part of
// the result. A nil stopAt expands everything.
func (g *Graph) ReverseReach(start, stopAt StringSet) StringSet {
	return g.reach(g.in, start, stopAt)
}

func (g *Graph) reach(adj []map[int]struct{}, start, stopAt StringSet) StringSet {
	result := make(StringSet)
	seen := make([]bool, len(g.names))
	var queue []int

	for _, name := range start.Sorted() {
		id, ok := g.ids[name]
		if !ok {
			continue
		}
		if !seen[id] {
			seen[id] = true
			queue = append(queue, id)
		}
		result.Add(name)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if stopAt != nil && stopAt.Has(g.names[id]) {
			continue
		}
		for next := range adj[id] {
			if seen[next] {
				continue
			}
			seen[next] = true
			result.Add(g.names[next])
			queue = append(queue, next)
		}
	}
	return result
}

func (g *Graph) neighbors(adj []map[int]struct{}, name string) StringSet {
	out := make(StringSet)
	id, ok := g.ids[name]
	if !ok {
		return out
	}
	for n := range adj[id] {
		out.Add(g.names[n])
	}
	return out
}

func cloneIDs(src map[int]struct{}) map[int]struct{} {
	dst := make(map[int]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}
