// Package resolver maps imported module names onto the packages of an
// environment that provide them.
package resolver

import "go.trai.ch/envscan/internal/core/domain"

// Resolution is the outcome of resolving one file's imports.
type Resolution struct {
	// Requested holds the providing packages, local ones included.
	Requested domain.StringSet
	// Missing holds the modules no package provides.
	Missing domain.StringSet
}

// Resolve looks every module up in env, dropping trailing dotted components
// until a provider is found. The language anchor is always looked up so the
// runtime counts as requested. It is reported missing only when the file
// imports it and no package provides it.
func Resolve(env *domain.Environment, modules domain.StringSet, language domain.Language) Resolution {
	res := Resolution{
		Requested: make(domain.StringSet),
		Missing:   make(domain.StringSet),
	}

	for _, mod := range modules.Sorted() {
		if name, ok := env.Lookup(language, mod); ok {
			res.Requested.Add(name)
			continue
		}
		res.Missing.Add(mod)
	}

	if anchor := language.Anchor(); anchor != "" {
		if name, ok := env.Lookup(language, anchor); ok {
			res.Requested.Add(name)
		}
	}
	return res
}
