package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Origin tells which metadata source produced a package.
type Origin string

const (
	// OriginManaged is a package tracked by a conda-meta manifest.
	OriginManaged Origin = "managed"
	// OriginDistribution is a package found through egg-info/dist-info metadata.
	OriginDistribution Origin = "distribution"
	// OriginLocal is a project-authored file.
	OriginLocal Origin = "local"
)

// Package is one installed package of an environment.
type Package struct {
	Name    string
	Version string
	Build   string
	Origin  Origin

	// Modules holds the importable module names per language.
	Modules map[Language]StringSet
	// Depends holds the direct dependency names as declared by the metadata.
	// Names that are not installed in the environment are kept here but never
	// become graph edges.
	Depends StringSet
	// Reverse holds the installed packages that depend on this one. It is
	// filled when the package is added to an Environment.
	Reverse StringSet
	// Eggs holds the distribution metadata entries this package owns, so the
	// distribution scan does not count them twice.
	Eggs StringSet
}

// NewPackage creates a package with empty module, dependency and egg sets.
// Non-local names are lower-cased.
func NewPackage(name, version, build string, origin Origin) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, zerr.With(ErrInvalidPackage, "origin", string(origin))
	}
	if origin != OriginLocal {
		name = strings.ToLower(name)
	}

	p := &Package{
		Name:    name,
		Version: version,
		Build:   build,
		Origin:  origin,
		Modules: make(map[Language]StringSet, 2),
		Depends: make(StringSet),
		Reverse: make(StringSet),
		Eggs:    make(StringSet),
	}
	for _, l := range Languages() {
		p.Modules[l] = make(StringSet)
	}
	return p, nil
}

// AddModule records that the package provides module for language.
func (p *Package) AddModule(language Language, module string) {
	if module == "" {
		return
	}
	set, ok := p.Modules[language]
	if !ok {
		set = make(StringSet)
		p.Modules[language] = set
	}
	set.Add(module)
}

// ModuleCount returns the number of modules across all languages.
func (p *Package) ModuleCount() int {
	n := 0
	for _, set := range p.Modules {
		n += set.Len()
	}
	return n
}
