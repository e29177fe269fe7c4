package domain

import (
	"slices"
	"strings"
)

// Environment is the package table of one environment prefix, optionally
// merged with the local packages of one project directory. It is read-only
// once constructed; WithLocals returns a copy.
type Environment struct {
	prefix  string
	overlay string

	packages map[string]*Package
	names    []string
	modules  map[Language]map[string]string
	deps     *Graph

	locals     map[string]*LocalPackage
	localNames []string
}

// NewEnvironment builds an environment from pkgs. When two packages provide
// the same module, the later one in pkgs wins. When two packages share a
// name, the later one replaces the earlier. Each package's Reverse set is
// filled from the dependency graph.
func NewEnvironment(prefix string, pkgs []*Package) *Environment {
	e := &Environment{
		prefix:   prefix,
		packages: make(map[string]*Package, len(pkgs)),
		modules:  make(map[Language]map[string]string, 2),
		deps:     NewGraph(),
		locals:   make(map[string]*LocalPackage),
	}
	for _, l := range Languages() {
		e.modules[l] = make(map[string]string)
	}

	for _, p := range pkgs {
		e.packages[p.Name] = p
	}
	for _, p := range pkgs {
		if e.packages[p.Name] != p {
			continue
		}
		for lang, mods := range p.Modules {
			index, ok := e.modules[lang]
			if !ok {
				index = make(map[string]string)
				e.modules[lang] = index
			}
			for _, m := range mods.Sorted() {
				index[m] = p.Name
			}
		}
	}

	e.names = make([]string, 0, len(e.packages))
	for name := range e.packages {
		e.names = append(e.names, name)
	}
	slices.Sort(e.names)

	for _, name := range e.names {
		e.deps.AddNode(name)
	}
	for _, name := range e.names {
		for _, dep := range e.packages[name].Depends.Sorted() {
			if dep != name && e.deps.Has(dep) {
				e.deps.AddEdge(name, dep)
			}
		}
	}
	for _, name := range e.names {
		e.packages[name].Reverse = e.deps.Predecessors(name)
	}
	return e
}

// Prefix returns the environment root path. The empty environment has no prefix.
func (e *Environment) Prefix() string {
	return e.prefix
}

// Overlay returns the local directory merged into this environment, if any.
func (e *Environment) Overlay() string {
	return e.overlay
}

// Len returns the number of installed packages.
func (e *Environment) Len() int {
	return len(e.names)
}

// Package returns the installed package called name.
func (e *Environment) Package(name string) (*Package, bool) {
	p, ok := e.packages[name]
	return p, ok
}

// PackageNames returns the names of all installed packages in ascending order.
func (e *Environment) PackageNames() []string {
	return slices.Clone(e.names)
}

// Installed returns the names of all installed packages as a set.
func (e *Environment) Installed() StringSet {
	return NewStringSet(e.names...)
}

// Dependencies returns the direct dependencies of name that are installed.
func (e *Environment) Dependencies(name string) StringSet {
	return e.deps.Successors(name)
}

// DependencyGraph returns the graph of installed dependency edges. Callers
// must not modify it.
func (e *Environment) DependencyGraph() *Graph {
	return e.deps
}

// ModuleCount returns the number of indexed modules for language.
func (e *Environment) ModuleCount(language Language) int {
	return len(e.modules[language])
}

// LookupExact returns the package or local package providing module.
func (e *Environment) LookupExact(language Language, module string) (string, bool) {
	name, ok := e.modules[language][module]
	return name, ok
}

// Lookup resolves module, dropping trailing dotted components until a
// provider is found.
func (e *Environment) Lookup(language Language, module string) (string, bool) {
	index := e.modules[language]
	for {
		if name, ok := index[module]; ok {
			return name, true
		}
		i := strings.LastIndex(module, ".")
		if i < 0 {
			return "", false
		}
		module = module[:i]
	}
}

// Local returns the local package called name.
func (e *Environment) Local(name string) (*LocalPackage, bool) {
	lp, ok := e.locals[name]
	return lp, ok
}

// Locals returns the local packages in name order.
func (e *Environment) Locals() []*LocalPackage {
	out := make([]*LocalPackage, 0, len(e.localNames))
	for _, name := range e.localNames {
		out = append(out, e.locals[name])
	}
	return out
}

// WithLocals returns a copy of e merged with the local packages of dir. The
// receiver is left untouched. Local module names shadow installed ones, and
// every local package's Depends is resolved through the merged index.
func (e *Environment) WithLocals(dir string, locals []*LocalPackage) *Environment {
	merged := &Environment{
		prefix:   e.prefix,
		overlay:  dir,
		packages: e.packages,
		names:    e.names,
		deps:     e.deps,
		modules:  make(map[Language]map[string]string, len(e.modules)),
		locals:   make(map[string]*LocalPackage, len(locals)),
	}
	for lang, index := range e.modules {
		cp := make(map[string]string, len(index))
		for k, v := range index {
			cp[k] = v
		}
		merged.modules[lang] = cp
	}

	for _, lp := range locals {
		c := lp.clone()
		merged.locals[c.Name] = c
		merged.localNames = append(merged.localNames, c.Name)
	}
	slices.Sort(merged.localNames)

	for _, name := range merged.localNames {
		lp := merged.locals[name]
		for lang, mods := range lp.Modules {
			index, ok := merged.modules[lang]
			if !ok {
				index = make(map[string]string)
				merged.modules[lang] = index
			}
			for _, m := range mods.Sorted() {
				index[m] = lp.Name
			}
		}
	}

	for _, name := range merged.localNames {
		lp := merged.locals[name]
		for lang, imports := range lp.Imports {
			for _, mod := range imports.Sorted() {
				dep, ok := merged.Lookup(lang, mod)
				if ok && dep != lp.Name {
					lp.Depends.Add(dep)
				}
			}
		}
	}
	return merged
}
