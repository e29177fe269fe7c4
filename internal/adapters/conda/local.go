package conda

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envscan/internal/core/domain"
	"go.trai.ch/envscan/internal/core/ports"
)

// scanLocals collects the local packages of dir: python importables keyed
// by their top-level name, and R scripts and notebooks by file name.
func scanLocals(dir string, extractor ports.ImportExtractor) []*domain.LocalPackage {
	byName := make(map[string]*domain.LocalPackage)
	var order []string

	get := func(name, path string, kind domain.LocalKind) *domain.LocalPackage {
		if lp, ok := byName[name]; ok {
			return lp
		}
		lp := domain.NewLocalPackage(name, path, kind)
		byName[name] = lp
		order = append(order, name)
		return lp
	}

	for _, imp := range pythonImportables(dir) {
		top, _, _ := strings.Cut(imp.module, ".")
		name := domain.LocalName(top)
		path := filepath.Join(dir, top)
		kind := domain.LocalPythonPackage
		if script := path + ".py"; isFile(script) {
			name += ".py"
			path = script
			kind = domain.LocalScript
		}

		lp := get(name, path, kind)
		lp.Language = domain.LanguagePython
		lp.Modules[domain.LanguagePython].Add(imp.module)

		found := extractor.ExtractFile(imp.path)
		for mod := range found.Modules {
			if !strings.HasPrefix(mod, ".") {
				lp.Imports[domain.LanguagePython].Add(mod)
			}
		}
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || isHidden(name) {
			continue
		}

		var kind domain.LocalKind
		switch filepath.Ext(name) {
		case ".R", ".r":
			kind = domain.LocalScript
		case ".ipynb":
			kind = domain.LocalNotebook
		default:
			continue
		}

		path := filepath.Join(dir, name)
		lp := get(domain.LocalName(name), path, kind)

		found := extractor.ExtractFile(path)
		lp.Kernel = found.Kernel
		lp.Language = found.Language
		if kind == domain.LocalScript {
			lp.Language = domain.LanguageR
		}
		if lp.Language != domain.LanguageNone {
			lp.Imports[lp.Language] = found.Modules.Clone()
		}
	}

	locals := make([]*domain.LocalPackage, 0, len(order))
	for _, name := range order {
		locals = append(locals, byName[name])
	}
	return locals
}
