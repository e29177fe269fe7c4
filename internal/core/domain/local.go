package domain

import (
	"path/filepath"
	"strings"
)

// LocalPrefix marks a package name as a project-local file.
const LocalPrefix = "./"

// LocalKind tells how a local package is stored on disk.
type LocalKind string

const (
	// LocalScript is a single python or R source file.
	LocalScript LocalKind = "script"
	// LocalPythonPackage is a directory holding an __init__.py.
	LocalPythonPackage LocalKind = "package"
	// LocalNotebook is a notebook document.
	LocalNotebook LocalKind = "notebook"
)

// LocalName returns the synthetic package name of a file in a scanned directory.
func LocalName(base string) string {
	return LocalPrefix + base
}

// IsLocalName reports whether name refers to a project-local file.
func IsLocalName(name string) bool {
	return strings.HasPrefix(name, LocalPrefix)
}

// LocalPackage is a project-authored file treated as a pseudo-package.
type LocalPackage struct {
	Name     string
	Path     string
	Kind     LocalKind
	Language Language
	// Kernel is the kernelspec name of a notebook.
	Kernel string

	Modules map[Language]StringSet
	Imports map[Language]StringSet
	// Depends is filled when the package joins an overlay Environment and
	// names both local and installed packages.
	Depends StringSet
}

// NewLocalPackage creates an empty local package for the file at path.
func NewLocalPackage(name, path string, kind LocalKind) *LocalPackage {
	lp := &LocalPackage{
		Name:    name,
		Path:    path,
		Kind:    kind,
		Modules: make(map[Language]StringSet, 2),
		Imports: make(map[Language]StringSet, 2),
		Depends: make(StringSet),
	}
	for _, l := range Languages() {
		lp.Modules[l] = make(StringSet)
		lp.Imports[l] = make(StringSet)
	}
	return lp
}

// File returns the file name relative to the scanned directory.
func (lp *LocalPackage) File() string {
	return strings.TrimPrefix(lp.Name, LocalPrefix)
}

// Dir returns the directory the package was found in.
func (lp *LocalPackage) Dir() string {
	return filepath.Dir(lp.Path)
}

// IsNotebook reports whether the package is a notebook document.
func (lp *LocalPackage) IsNotebook() bool {
	return lp.Kind == LocalNotebook
}

// LocalDepends returns the dependencies that are themselves local packages.
func (lp *LocalPackage) LocalDepends() StringSet {
	out := make(StringSet)
	for dep := range lp.Depends {
		if IsLocalName(dep) {
			out.Add(dep)
		}
	}
	return out
}

// clone copies the package with fresh dependency storage. Module and import
// sets are shared because they never change after the directory scan.
func (lp *LocalPackage) clone() *LocalPackage {
	c := *lp
	c.Depends = make(StringSet)
	return &c
}
